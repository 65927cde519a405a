package lichess

// Response types for the subset of the lichess.org API the site uses.
// Field sets are trimmed to what the pages actually render; lichess
// sends plenty more.

type Puzzle struct {
	Game struct {
		ID    string `json:"id"`
		PGN   string `json:"pgn"`
		Clock string `json:"clock"`
	} `json:"game"`
	Puzzle struct {
		ID         string   `json:"id"`
		Rating     int      `json:"rating"`
		Plays      int      `json:"plays"`
		InitialPly int      `json:"initialPly"`
		Solution   []string `json:"solution"`
		Themes     []string `json:"themes"`
	} `json:"puzzle"`
}

type Perf struct {
	Rating int `json:"rating"`
	Games  int `json:"games"`
	Prog   int `json:"prog"`
}

type User struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Perfs    map[string]Perf `json:"perfs"`
	Profile  struct {
		Country   string `json:"country"`
		Bio       string `json:"bio"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"profile"`
	CreatedAt int64 `json:"createdAt"`
	SeenAt    int64 `json:"seenAt"`
	PlayTime  struct {
		Total int `json:"total"`
		TV    int `json:"tv"`
	} `json:"playTime"`
}

type TVChannel struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Title string `json:"title"`
	} `json:"user"`
	Rating int    `json:"rating"`
	GameID string `json:"gameId"`
}

// TVChannels maps channel name (e.g. "blitz", "rapid") to the game
// currently featured on that channel.
type TVChannels map[string]TVChannel

type Tournament struct {
	ID        string `json:"id"`
	CreatedBy string `json:"createdBy"`
	System    string `json:"system"`
	Minutes   int    `json:"minutes"`
	Clock     struct {
		Limit     int `json:"limit"`
		Increment int `json:"increment"`
	} `json:"clock"`
	Rated     bool   `json:"rated"`
	FullName  string `json:"fullName"`
	NbPlayers int    `json:"nbPlayers"`
	Variant   struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"variant"`
	StartsAt   int64 `json:"startsAt"`
	FinishesAt int64 `json:"finishesAt"`
	Status     int   `json:"status"`
	Perf       struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"perf"`
}

type TournamentList struct {
	Created  []Tournament `json:"created"`
	Started  []Tournament `json:"started"`
	Finished []Tournament `json:"finished"`
}

type TournamentDetails struct {
	Tournament
	Standing struct {
		Page    int `json:"page"`
		Players []struct {
			Name   string `json:"name"`
			Rank   int    `json:"rank"`
			Rating int    `json:"rating"`
			Score  int    `json:"score"`
		} `json:"players"`
	} `json:"standing"`
}

type StudyMember struct {
	User struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"user"`
	Role string `json:"role"`
}

type StudyChapter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Study struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Members     []StudyMember  `json:"members"`
	Chapters    []StudyChapter `json:"chapters"`
	CreatedAt   int64          `json:"createdAt"`
	UpdatedAt   int64          `json:"updatedAt"`
	Likes       int            `json:"likes"`
	Views       int            `json:"views"`
	Description string         `json:"description"`
}

type GamePlayer struct {
	User struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"user"`
	Rating int `json:"rating"`
}

type Game struct {
	ID      string `json:"id"`
	Rated   bool   `json:"rated"`
	Variant string `json:"variant"`
	Speed   string `json:"speed"`
	Perf    string `json:"perf"`
	Status  string `json:"status"`
	Winner  string `json:"winner"`
	Players struct {
		White GamePlayer `json:"white"`
		Black GamePlayer `json:"black"`
	} `json:"players"`
	Opening struct {
		Eco  string `json:"eco"`
		Name string `json:"name"`
		Ply  int    `json:"ply"`
	} `json:"opening"`
	Moves      string `json:"moves"`
	PGN        string `json:"pgn"`
	CreatedAt  int64  `json:"createdAt"`
	LastMoveAt int64  `json:"lastMoveAt"`
}

type OpeningMove struct {
	UCI           string `json:"uci"`
	SAN           string `json:"san"`
	White         int    `json:"white"`
	Draws         int    `json:"draws"`
	Black         int    `json:"black"`
	AverageRating int    `json:"averageRating"`
}

type OpeningStats struct {
	White   int           `json:"white"`
	Draws   int           `json:"draws"`
	Black   int           `json:"black"`
	Moves   []OpeningMove `json:"moves"`
	Opening *struct {
		Eco  string `json:"eco"`
		Name string `json:"name"`
	} `json:"opening"`
}

type BlogPost struct {
	ID        string
	Title     string
	Shortlede string
	Html      string
	Image     string
	Date      int64
	Author    string
	Url       string
}

type BlogPage struct {
	CurrentPage        int
	MaxPerPage         int
	NbPages            int
	NbResults          int
	CurrentPageResults []BlogPost
}
