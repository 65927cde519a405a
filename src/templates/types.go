package templates

import (
	"html/template"
	"time"

	"github.com/smartchessacademy/website/src/lichess"
)

type BaseData struct {
	Title         string
	CanonicalLink string
	Notices       []Notice

	CurrentUrl   string
	LoginPageUrl string

	User    *User
	Session *Session

	Header Header
	Footer Footer
}

func (bd *BaseData) AddImmediateNotice(class, content string) {
	bd.Notices = append(bd.Notices, Notice{
		Class:   class,
		Content: template.HTML(content),
	})
}

type Notice struct {
	Class   string
	Content template.HTML
}

type Header struct {
	HomepageUrl    string
	AboutUrl       string
	PlansUrl       string
	ArticlesUrl    string
	NewsUrl        string
	ForumUrl       string
	PuzzlesUrl     string
	WatchUrl       string
	TournamentsUrl string
	StudiesUrl     string
	ContactUrl     string

	ProfileUrl  string
	RegisterUrl string
	LogoutUrl   string
}

type Footer struct {
	HomepageUrl      string
	AboutUrl         string
	ContactUrl       string
	NewsletterApiUrl string
	ContactEmail     string
}

type User struct {
	ID              string
	Email           string
	Username        string
	DisplayName     string
	LichessUsername string
	AvatarUrl       string
}

type Session struct {
	CSRFToken string
}

type ForumPost struct {
	ID          string
	Title       string
	Content     template.HTML
	AuthorName  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Edited      bool
	NumComments int

	Url       string
	EditUrl   string
	DeleteUrl string
	IsAuthor  bool
}

type ForumComment struct {
	ID         string
	Content    template.HTML
	AuthorName string
	CreatedAt  time.Time
	Edited     bool

	EditUrl   string
	DeleteUrl string
	IsAuthor  bool
}

type Pagination struct {
	Current int
	Total   int

	FirstUrl    string
	LastUrl     string
	PreviousUrl string
	NextUrl     string
}

type Article struct {
	Slug        string
	Title       string
	Author      string
	Description string
	PublishedAt time.Time

	Url    string
	Blocks []ArticleBlock
}

// ArticleBlock is one rendered element of an article body. Kind picks
// the fragment in the article template.
type ArticleBlock struct {
	Kind string

	// paragraph / heading
	Text  string
	Level int

	// image / embed / lichess_study
	Url     string
	Alt     string
	Title   string
	Caption string

	// chessboard
	Board *Chessboard
}

// Chessboard is a board position under cursor control. Navigation is
// plain links; every position has its own url.
type Chessboard struct {
	FEN      string
	Cursor   int
	NumMoves int
	LastMove string
	Moves    []ChessboardMove
	Caption  string

	ResetUrl string
	PrevUrl  string
	NextUrl  string
	EndUrl   string
}

type ChessboardMove struct {
	Number  int // cursor position after this move
	SAN     string
	Url     string
	Current bool
}

type NewsItem struct {
	ID        string
	Title     string
	Content   template.HTML
	EventDate time.Time
	EventTime string
	Location  string
	EventType string
	Upcoming  bool

	Url string
}

type BlogPostView struct {
	Title     string
	Shortlede string
	Image     string
	Author    string
	Date      time.Time
	Url       string
}

// LichessSection is one server-rendered widget backed by the lichess
// API. When Err is set the section renders an inline notice and the
// rest of the page is unaffected.
type LichessSection[T any] struct {
	Data T
	Err  string
}

type PuzzlesPage struct {
	Puzzle   LichessSection[*lichess.Puzzle]
	Board    *Chessboard
	EmbedUrl string
}

type WatchPage struct {
	Channels LichessSection[[]TVChannelView]
	EmbedUrl string
}

type TVChannelView struct {
	Channel    string
	Name       string
	PlayerName string
	Title      string
	Rating     string
	GameUrl    string
}

type TournamentView struct {
	Name      string
	Players   int
	StartsAt  time.Time
	Perf      string
	Url       string
	DetailUrl string
}

type TournamentsPage struct {
	Created  LichessSection[[]TournamentView]
	Started  LichessSection[[]TournamentView]
	Finished LichessSection[[]TournamentView]
}

type PerfView struct {
	Name   string
	Rating string
	Games  int
}

type GameView struct {
	White   string
	Black   string
	Speed   string
	Opening string
	Result  string
	Url     string
}

type StudyView struct {
	Name     string
	Chapters int
	Likes    int
	Url      string
	EmbedUrl string
}
