package templates

import (
	"time"

	"github.com/smartchessacademy/website/src/chess"
	"github.com/smartchessacademy/website/src/content"
	"github.com/smartchessacademy/website/src/lichess"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/parsing"
	"github.com/smartchessacademy/website/src/scadata"
	"github.com/smartchessacademy/website/src/siteurl"
)

func UserToTemplate(u *models.User, p *models.Profile) *User {
	if u == nil {
		return nil
	}
	result := &User{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: p.DisplayName(),
	}
	if p != nil {
		result.Username = p.Username
		result.LichessUsername = p.LichessUsername
		result.AvatarUrl = p.AvatarUrl
	}
	return result
}

func SessionToTemplate(s *models.Session) *Session {
	if s == nil {
		return nil
	}
	return &Session{
		CSRFToken: s.CSRFToken,
	}
}

func ForumPostToTemplate(item *scadata.ForumPostAndAuthor, currentUser *models.User) ForumPost {
	post := item.ForumPost
	return ForumPost{
		ID:         post.ID.String(),
		Title:      post.Title,
		Content:    parsing.LinkifyText(post.Content),
		AuthorName: item.Author.DisplayName(),
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
		Edited:     post.UpdatedAt.After(post.CreatedAt),

		Url:       siteurl.BuildForumPost(post.ID),
		EditUrl:   siteurl.BuildForumPostEdit(post.ID),
		DeleteUrl: siteurl.BuildForumPostDelete(post.ID),
		IsAuthor:  post.IsAuthor(currentUser),
	}
}

func ForumPostListItemToTemplate(item *scadata.ForumPostListItem, currentUser *models.User) ForumPost {
	post := ForumPostToTemplate(&item.ForumPostAndAuthor, currentUser)
	post.NumComments = item.NumComments
	return post
}

func ForumCommentToTemplate(item *scadata.ForumCommentAndAuthor, currentUser *models.User) ForumComment {
	comment := item.ForumComment
	return ForumComment{
		ID:         comment.ID.String(),
		Content:    parsing.LinkifyText(comment.Content),
		AuthorName: item.Author.DisplayName(),
		CreatedAt:  comment.CreatedAt,
		Edited:     comment.UpdatedAt.After(comment.CreatedAt),

		EditUrl:   siteurl.BuildForumCommentEdit(comment.ID),
		DeleteUrl: siteurl.BuildForumCommentDelete(comment.ID),
		IsAuthor:  comment.IsAuthor(currentUser),
	}
}

// ArticleToTemplate renders an article's blocks. boardCursors maps
// chessboard block index (counting chessboards only) to the requested
// cursor position; boards not in the map start at 0.
func ArticleToTemplate(article *models.Article, blocks []content.Block, boardCursors map[int]int) Article {
	result := Article{
		Slug:        article.Slug,
		Title:       article.Title,
		Author:      article.Author,
		Description: article.Description,
		PublishedAt: article.PublishedAt,
		Url:         siteurl.BuildArticle(article.Slug),
	}

	boardIndex := 0
	for _, block := range blocks {
		switch b := block.(type) {
		case content.ParagraphBlock:
			result.Blocks = append(result.Blocks, ArticleBlock{
				Kind: "paragraph",
				Text: b.Text,
			})
		case content.HeadingBlock:
			result.Blocks = append(result.Blocks, ArticleBlock{
				Kind:  "heading",
				Text:  b.Text,
				Level: b.Level,
			})
		case content.ImageBlock:
			result.Blocks = append(result.Blocks, ArticleBlock{
				Kind:    "image",
				Url:     b.Url,
				Alt:     b.Alt,
				Caption: b.Caption,
			})
		case content.ChessboardBlock:
			board := chess.NewBoard(b.PGN)
			board.JumpTo(boardCursors[boardIndex])
			result.Blocks = append(result.Blocks, ArticleBlock{
				Kind:    "chessboard",
				Caption: b.Caption,
				Board:   ChessboardToTemplate(board, article.Slug, boardIndex, b.Caption),
			})
			boardIndex++
		case content.EmbedBlock:
			result.Blocks = append(result.Blocks, ArticleBlock{
				Kind:    "embed",
				Url:     b.IframeSrc,
				Title:   b.Title,
				Caption: b.Caption,
			})
		case content.LichessStudyBlock:
			result.Blocks = append(result.Blocks, ArticleBlock{
				Kind:    "lichess_study",
				Url:     lichess.StudyEmbedUrl(b.StudyID, b.ChapterID),
				Caption: b.Caption,
			})
		}
	}

	return result
}

func ChessboardToTemplate(board *chess.Board, articleSlug string, boardIndex int, caption string) *Chessboard {
	result := &Chessboard{
		FEN:      board.FEN(),
		Cursor:   board.Cursor(),
		NumMoves: board.NumMoves(),
		LastMove: board.LastMove(),
		Caption:  caption,

		ResetUrl: siteurl.BuildArticleWithMove(articleSlug, boardIndex, 0),
		EndUrl:   siteurl.BuildArticleWithMove(articleSlug, boardIndex, board.NumMoves()),
	}
	if board.Cursor() > 0 {
		result.PrevUrl = siteurl.BuildArticleWithMove(articleSlug, boardIndex, board.Cursor()-1)
	}
	if board.Cursor() < board.NumMoves() {
		result.NextUrl = siteurl.BuildArticleWithMove(articleSlug, boardIndex, board.Cursor()+1)
	}

	for i, san := range board.SAN() {
		result.Moves = append(result.Moves, ChessboardMove{
			Number:  i + 1,
			SAN:     san,
			Url:     siteurl.BuildArticleWithMove(articleSlug, boardIndex, i+1),
			Current: i+1 == board.Cursor(),
		})
	}

	return result
}

func NewsItemToTemplate(fact *models.NewsFact, upcoming bool) NewsItem {
	return NewsItem{
		ID:        fact.ID.String(),
		Title:     fact.Title,
		Content:   parsing.ParseMarkdown(fact.Content),
		EventDate: fact.EventDate,
		EventTime: fact.EventTime,
		Location:  fact.Location,
		EventType: fact.EventType,
		Upcoming:  upcoming,

		Url: siteurl.BuildNewsItem(fact.ID),
	}
}

func BlogPostToTemplate(post lichess.BlogPost) BlogPostView {
	return BlogPostView{
		Title:     post.Title,
		Shortlede: post.Shortlede,
		Image:     post.Image,
		Author:    post.Author,
		Date:      time.UnixMilli(post.Date),
		Url:       post.Url,
	}
}

func TVChannelsToTemplate(channels lichess.TVChannels) []TVChannelView {
	// Fixed ordering, the interesting channels first.
	order := []string{"best", "blitz", "rapid", "classical", "bullet", "chess960"}
	var result []TVChannelView
	seen := make(map[string]bool)
	for _, key := range order {
		if channel, ok := channels[key]; ok {
			result = append(result, tvChannelView(key, channel))
			seen[key] = true
		}
	}
	for key, channel := range channels {
		if !seen[key] {
			result = append(result, tvChannelView(key, channel))
		}
	}
	return result
}

func tvChannelView(key string, channel lichess.TVChannel) TVChannelView {
	return TVChannelView{
		Channel:    key,
		Name:       lichess.TimeControlName(key),
		PlayerName: channel.User.Name,
		Title:      channel.User.Title,
		Rating:     lichess.FormatRating(channel.Rating),
		GameUrl:    lichess.GameEmbedUrl(channel.GameID, ""),
	}
}

func TournamentsToTemplate(tournaments []lichess.Tournament) []TournamentView {
	result := make([]TournamentView, 0, len(tournaments))
	for _, tournament := range tournaments {
		result = append(result, TournamentView{
			Name:      tournament.FullName,
			Players:   tournament.NbPlayers,
			StartsAt:  unixMilli(tournament.StartsAt),
			Perf:      lichess.TimeControlName(tournament.Perf.Key),
			Url:       "https://lichess.org/tournament/" + tournament.ID,
			DetailUrl: siteurl.BuildTournamentDetails(tournament.ID),
		})
	}
	return result
}

func unixMilli(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// PerfsToTemplate flattens a user's rating map into display order.
func PerfsToTemplate(user *lichess.User) []PerfView {
	if user == nil {
		return nil
	}
	order := []string{"bullet", "blitz", "rapid", "classical", "correspondence", "puzzle"}
	var result []PerfView
	for _, key := range order {
		if perf, ok := user.Perfs[key]; ok && perf.Games > 0 {
			result = append(result, PerfView{
				Name:   lichess.TimeControlName(key),
				Rating: lichess.FormatRating(perf.Rating),
				Games:  perf.Games,
			})
		}
	}
	return result
}

func GamesToTemplate(games []lichess.Game) []GameView {
	result := make([]GameView, 0, len(games))
	for _, game := range games {
		view := GameView{
			White:   game.Players.White.User.Name,
			Black:   game.Players.Black.User.Name,
			Speed:   lichess.TimeControlName(game.Speed),
			Opening: game.Opening.Name,
			Url:     "https://lichess.org/" + game.ID,
		}
		switch game.Winner {
		case "white":
			view.Result = "1-0"
		case "black":
			view.Result = "0-1"
		default:
			if game.Status == "draw" || game.Status == "stalemate" {
				view.Result = "½-½"
			}
		}
		result = append(result, view)
	}
	return result
}

func StudiesToTemplate(studies []lichess.Study) []StudyView {
	result := make([]StudyView, 0, len(studies))
	for _, study := range studies {
		result = append(result, StudyView{
			Name:     study.Name,
			Chapters: len(study.Chapters),
			Likes:    study.Likes,
			Url:      "https://lichess.org/study/" + study.ID,
			EmbedUrl: lichess.StudyEmbedUrl(study.ID, ""),
		})
	}
	return result
}
