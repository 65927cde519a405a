package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	lorem "github.com/HandmadeNetwork/golorem"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smartchessacademy/website/src/auth"
	"github.com/smartchessacademy/website/src/content"
	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/migration/types"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/scadata"
	"github.com/smartchessacademy/website/src/website"
)

func init() {
	seedCommand := &cobra.Command{
		Use:   "seed",
		Short: "Resets the db and fills it with sample data for local dev",
		Run: func(cmd *cobra.Command, args []string) {
			SampleSeed()
		},
	}
	website.WebsiteCommand.AddCommand(seedCommand)
}

// SampleSeed migrates to the latest version and fills the database with
// sample users, forum activity, news, and articles. All seeded accounts
// get the password "password".
func SampleSeed() {
	Migrate(types.MigrationVersion{})

	ctx := context.Background()
	conn := db.NewConn()
	defer conn.Close(ctx)

	fmt.Println("Creating users (all with password \"password\")...")
	alice := seedUser(ctx, conn, "alice@example.com", "alice", "Alice Winters", "alice_smartchess")
	bob := seedUser(ctx, conn, "bob@example.com", "bob", "Bob Molina", "")
	charlie := seedUser(ctx, conn, "charlie@example.com", "charlie", "", "")
	users := []*models.User{alice, bob, charlie}

	fmt.Println("Creating forum posts...")
	for i := 0; i < 8; i++ {
		author := users[rand.Intn(len(users))]
		post, err := scadata.CreateForumPost(ctx, conn, author.ID,
			lorem.Sentence(3, 8),
			lorem.Paragraph(3, 6),
		)
		if err != nil {
			panic(err)
		}
		for j := rand.Intn(5); j > 0; j-- {
			commenter := users[rand.Intn(len(users))]
			_, err := scadata.CreateForumComment(ctx, conn, post.ID, commenter.ID, lorem.Paragraph(1, 3))
			if err != nil {
				panic(err)
			}
		}
	}

	fmt.Println("Creating news...")
	seedNewsFact(ctx, conn, "Summer rapid tournament", time.Now().AddDate(0, 0, 14), "18:00", "Community hall", "tournament")
	seedNewsFact(ctx, conn, "New endgame study group", time.Now().AddDate(0, 0, 5), "", "Online", "course")
	seedNewsFact(ctx, conn, "Club championship results", time.Now().AddDate(0, 0, -20), "", "", "")

	fmt.Println("Creating articles...")
	seedArticle(ctx, conn, "italian-game-basics", "The Italian Game, move by move", "Alice Winters")
	seedArticle(ctx, conn, "rook-endings-101", "Rook endings you must know", "Bob Molina")

	fmt.Println("Done!")
}

func seedUser(ctx context.Context, conn db.ConnOrTx, email, username, fullName, lichessUsername string) *models.User {
	user, err := auth.CreateUser(ctx, conn, email, username, "password", models.UserStatusConfirmed)
	if err != nil {
		panic(err)
	}
	if fullName != "" || lichessUsername != "" {
		err = scadata.UpdateProfile(ctx, conn, user.ID, scadata.ProfileUpdate{
			Username:        username,
			FullName:        fullName,
			LichessUsername: lichessUsername,
		})
		if err != nil {
			panic(err)
		}
	}
	return user
}

func seedNewsFact(ctx context.Context, conn db.ConnOrTx, title string, eventDate time.Time, eventTime, location, eventType string) {
	_, err := conn.Exec(ctx,
		`
		INSERT INTO news_fact (id, event_date, event_time, title, content, location, event_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
		uuid.New(), eventDate, eventTime, title, lorem.Paragraph(1, 3), location, eventType,
	)
	if err != nil {
		panic(err)
	}
}

func seedArticle(ctx context.Context, conn db.ConnOrTx, slug, title, author string) {
	blocks := []content.Block{
		content.HeadingBlock{Level: 2, Text: lorem.Sentence(3, 6)},
		content.ParagraphBlock{Text: lorem.Paragraph(3, 5)},
		content.ChessboardBlock{
			PGN:     "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. c3 Nf6 5. d4 exd4 6. cxd4 Bb4+",
			Caption: "The main line, up to the check on b4.",
		},
		content.ParagraphBlock{Text: lorem.Paragraph(2, 4)},
	}
	// Blocks are stored flat: the type tag sits alongside the block's
	// own fields.
	var rawBlocks []map[string]any
	for _, block := range blocks {
		encoded, err := json.Marshal(block)
		if err != nil {
			panic(err)
		}
		var flat map[string]any
		if err := json.Unmarshal(encoded, &flat); err != nil {
			panic(err)
		}
		flat["type"] = block.BlockType()
		rawBlocks = append(rawBlocks, flat)
	}
	contentJSON, err := json.Marshal(rawBlocks)
	if err != nil {
		panic(err)
	}

	_, err = conn.Exec(ctx,
		`
		INSERT INTO article (id, slug, title, author, description, content_json)
		VALUES ($1, $2, $3, $4, $5, $6)
		`,
		uuid.New(), slug, title, author, lorem.Sentence(8, 16), contentJSON,
	)
	if err != nil {
		panic(err)
	}
}
