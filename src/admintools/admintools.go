package admintools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/smartchessacademy/website/src/auth"
	"github.com/smartchessacademy/website/src/content"
	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/website"
)

func init() {
	adminCommand := &cobra.Command{
		Use:   "admin",
		Short: "Miscellaneous admin commands",
	}
	website.WebsiteCommand.AddCommand(adminCommand)

	setPasswordCommand := &cobra.Command{
		Use:   "setpassword [email] [new password]",
		Short: "Replace a user's password",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Printf("You must provide an email and a password.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			email := args[0]
			password := args[1]

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			row := conn.QueryRow(ctx, "SELECT id FROM sca_user WHERE lower(email) = lower($1)", email)
			var id uuid.UUID
			err := row.Scan(&id)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					fmt.Printf("User '%s' not found\n", email)
					os.Exit(1)
				} else {
					panic(err)
				}
			}

			hashedPassword := auth.HashPassword(password)
			_, err = conn.Exec(ctx, "UPDATE sca_user SET password = $1 WHERE id = $2", hashedPassword.String(), id)
			if err != nil {
				panic(err)
			}

			fmt.Printf("Successfully updated password for '%s'\n", email)
		},
	}
	adminCommand.AddCommand(setPasswordCommand)

	activateUserCommand := &cobra.Command{
		Use:   "activateuser [email]",
		Short: "Activates a user manually",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Printf("You must provide an email.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			email := args[0]

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			res, err := conn.Exec(ctx, "UPDATE sca_user SET status = $1 WHERE lower(email) = lower($2)", models.UserStatusConfirmed, email)
			if err != nil {
				panic(err)
			}
			if res.RowsAffected() == 0 {
				fmt.Printf("User not found.\n\n")
				os.Exit(1)
			}

			fmt.Printf("User has been successfully activated.\n\n")
		},
	}
	adminCommand.AddCommand(activateUserCommand)

	addNewsCommand := &cobra.Command{
		Use:   "addnews [title] [event date, e.g. 2026-09-12] [markdown content]",
		Short: "Publish a news fact or upcoming event",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 3 {
				fmt.Printf("You must provide a title, an event date, and content.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			title := args[0]
			eventDate, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				fmt.Printf("ERROR: bad event date: %v\n", err)
				os.Exit(1)
			}
			newsContent := args[2]

			location, _ := cmd.Flags().GetString("location")
			eventTime, _ := cmd.Flags().GetString("time")
			eventType, _ := cmd.Flags().GetString("type")

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			id := uuid.New()
			_, err = conn.Exec(ctx,
				`
				INSERT INTO news_fact (id, event_date, event_time, title, content, location, event_type)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				`,
				id, eventDate, eventTime, title, newsContent, location, eventType,
			)
			if err != nil {
				panic(err)
			}

			fmt.Printf("Created news fact %s\n", id)
		},
	}
	addNewsCommand.Flags().String("location", "", "Where the event takes place")
	addNewsCommand.Flags().String("time", "", "Free-form event time, e.g. \"18:00 CET\"")
	addNewsCommand.Flags().String("type", "", "Event type label, e.g. \"tournament\"")
	adminCommand.AddCommand(addNewsCommand)

	addArticleCommand := &cobra.Command{
		Use:   "addarticle [slug] [title] [blocks json file]",
		Short: "Publish an article from a block-content JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 3 {
				fmt.Printf("You must provide a slug, a title, and a content file.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			slug := args[0]
			title := args[1]
			contentJSON, err := os.ReadFile(args[2])
			if err != nil {
				fmt.Printf("ERROR: couldn't read content file: %v\n", err)
				os.Exit(1)
			}

			// Make sure the blocks parse before they hit the database.
			blocks, err := content.DecodeBlocks(contentJSON)
			if err != nil {
				fmt.Printf("ERROR: bad content file: %v\n", err)
				os.Exit(1)
			}
			if len(blocks) == 0 {
				fmt.Printf("ERROR: content file contains no usable blocks\n")
				os.Exit(1)
			}

			author, _ := cmd.Flags().GetString("author")
			description, _ := cmd.Flags().GetString("description")

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			id := uuid.New()
			_, err = conn.Exec(ctx,
				`
				INSERT INTO article (id, slug, title, author, description, content_json)
				VALUES ($1, $2, $3, $4, $5, $6)
				`,
				id, slug, title, author, description, contentJSON,
			)
			if err != nil {
				panic(err)
			}

			fmt.Printf("Created article %s (%d blocks)\n", slug, len(blocks))
		},
	}
	addArticleCommand.Flags().String("author", "", "Display name of the article's author")
	addArticleCommand.Flags().String("description", "", "Short description for listings")
	adminCommand.AddCommand(addArticleCommand)
}
