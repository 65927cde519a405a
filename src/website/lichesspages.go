package website

import (
	"github.com/smartchessacademy/website/src/chess"
	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/lichess"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
)

func Puzzles(c *RequestContext) ResponseData {
	puzzle, err := c.Lichess.DailyPuzzle(c)

	data := struct {
		templates.BaseData
		Puzzle   templates.LichessSection[*lichess.Puzzle]
		Board    *templates.Chessboard
		EmbedUrl string
	}{
		BaseData: getBaseData(c, "Daily puzzle"),
		Puzzle:   lichessSection(puzzle, err),
		EmbedUrl: lichess.PuzzleEmbedUrl(),
	}
	if err == nil {
		// The puzzle position is where the game's PGN leaves off.
		board := chess.NewBoard(puzzle.Game.PGN)
		board.End()
		data.Board = &templates.Chessboard{
			FEN:      board.FEN(),
			Cursor:   board.Cursor(),
			NumMoves: board.NumMoves(),
			LastMove: board.LastMove(),
		}
	}

	var res ResponseData
	res.MustWriteTemplate("puzzles.html", data)
	return res
}

func Watch(c *RequestContext) ResponseData {
	channels, err := c.Lichess.TVChannels(c)

	var res ResponseData
	res.MustWriteTemplate("watch.html", struct {
		templates.BaseData
		Channels templates.LichessSection[[]templates.TVChannelView]
		EmbedUrl string
	}{
		BaseData: getBaseData(c, "Watch"),
		Channels: lichessSection(templates.TVChannelsToTemplate(channels), err),
		EmbedUrl: lichess.TVEmbedUrl("", "brown"),
	})
	return res
}

func Tournaments(c *RequestContext) ResponseData {
	tournaments, err := c.Lichess.Tournaments(c)

	var created, started, finished []templates.TournamentView
	if err == nil {
		created = templates.TournamentsToTemplate(tournaments.Created)
		started = templates.TournamentsToTemplate(tournaments.Started)
		finished = templates.TournamentsToTemplate(tournaments.Finished)
	}

	var res ResponseData
	res.MustWriteTemplate("tournaments.html", struct {
		templates.BaseData
		templates.TournamentsPage
	}{
		BaseData: getBaseData(c, "Tournaments"),
		TournamentsPage: templates.TournamentsPage{
			Created:  lichessSection(created, err),
			Started:  lichessSection(started, err),
			Finished: lichessSection(finished, err),
		},
	})
	return res
}

func TournamentDetails(c *RequestContext) ResponseData {
	id := c.PathParams["id"]
	details, err := c.Lichess.TournamentDetails(c, id)

	var res ResponseData
	res.MustWriteTemplate("tournament_details.html", struct {
		templates.BaseData
		Tournament templates.LichessSection[*lichess.TournamentDetails]
		LichessUrl string
		BackUrl    string
	}{
		BaseData:   getBaseData(c, "Tournament"),
		Tournament: lichessSection(details, err),
		LichessUrl: "https://lichess.org/tournament/" + id,
		BackUrl:    siteurl.BuildTournaments(),
	})
	return res
}

func Studies(c *RequestContext) ResponseData {
	studies, err := c.Lichess.UserStudies(c, config.Config.Lichess.AcademyUsername)

	var res ResponseData
	res.MustWriteTemplate("studies.html", struct {
		templates.BaseData
		Studies templates.LichessSection[[]templates.StudyView]
	}{
		BaseData: getBaseData(c, "Studies"),
		Studies:  lichessSection(templates.StudiesToTemplate(studies), err),
	})
	return res
}
