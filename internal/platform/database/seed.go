// Copyright (c) 2026 Meeple. All rights reserved.

// Package database provides store-level development fixtures.
//
// The schema itself is applied by the migration runner; this package only
// loads sample rows so a fresh environment serves data immediately.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boardhaus/meeple/internal/platform/database/schema"
)

// Seed populates the database with initial development data.
//
// It is idempotent: when any category row already exists the seed is skipped
// entirely. All rows are inserted in a single transaction so a partial seed
// can never be observed.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	var count int
	existsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.Categories.Table)
	if err := pool.QueryRow(ctx, existsQuery).Scan(&count); err != nil {
		return fmt.Errorf("seed: check categories: %w", err)
	}

	if count > 0 {
		logger.Info("database already seeded, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := seedCategories(ctx, tx); err != nil {
		return err
	}
	if err := seedUsers(ctx, tx); err != nil {
		return err
	}
	if err := seedReviews(ctx, tx); err != nil {
		return err
	}
	if err := seedComments(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}

	logger.Info("database seeded with development fixtures")
	return nil
}

func seedCategories(ctx context.Context, tx pgx.Tx) error {
	rows := [][2]string{
		{"euro game", "Abstact games that involve little luck"},
		{"social deduction", "Players attempt to uncover each other's hidden role"},
		{"dexterity", "Games involving physical skill"},
		{"children's games", "Games suitable for children"},
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.Categories.Table, schema.Categories.Slug, schema.Categories.Description)

	for _, row := range rows {
		if _, err := tx.Exec(ctx, query, row[0], row[1]); err != nil {
			return fmt.Errorf("seed: insert category %q: %w", row[0], err)
		}
	}
	return nil
}

func seedUsers(ctx context.Context, tx pgx.Tx) error {
	rows := [][3]string{
		{"mallionaire", "haz", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{"philippaclaire9", "philippa", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{"bainesface", "sarah", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{"dav3rid", "dave", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
		schema.Users.Table, schema.Users.Username, schema.Users.Name, schema.Users.AvatarURL)

	for _, row := range rows {
		if _, err := tx.Exec(ctx, query, row[0], row[1], row[2]); err != nil {
			return fmt.Errorf("seed: insert user %q: %w", row[0], err)
		}
	}
	return nil
}

type seedReview struct {
	title, designer, owner, imgURL, body, category, createdAt string
	votes                                                     int
}

func seedReviews(ctx context.Context, tx pgx.Tx) error {
	const defaultImg = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

	rows := []seedReview{
		{"Agricola", "Uwe Rosenberg", "mallionaire", defaultImg, "Farmyard fun!", "euro game", "2021-01-18T10:00:20.514Z", 1},
		{"Jenga", "Leslie Scott", "philippaclaire9", defaultImg, "Fiddly fun for all the family", "dexterity", "2021-01-18T10:01:41.251Z", 5},
		{"Ultimate Werewolf", "Akihisa Okui", "bainesface", defaultImg, "We couldn't find the werewolf!", "social deduction", "2021-01-18T10:01:41.251Z", 5},
		{"Dolor reprehenderit", "Gamey McGameface", "mallionaire", defaultImg, "Consequat velit qui voluptate mollit", "social deduction", "2021-01-22T11:35:50.936Z", 7},
		{"Proident tempor et.", "Seymour Buttz", "mallionaire", defaultImg, "Labore occaecat sunt qui commodo anim", "social deduction", "2021-01-07T09:06:08.077Z", 5},
		{"Occaecat consequat officia in quis commodo.", "Ollie Tabooger", "mallionaire", defaultImg, "Fugiat fugiat enim officia laborum quis", "social deduction", "2020-09-13T14:19:28.077Z", 8},
		{"Mollit elit qui incididunt veniam occaecat cupidatat", "Avery Wunzboogerz", "mallionaire", defaultImg, "Consectetur incididunt aliquip sunt mollit", "social deduction", "2021-01-25T11:16:54.963Z", 9},
		{"One Night Ultimate Werewolf", "Akihisa Okui", "mallionaire", defaultImg, "We couldn't find the werewolf!", "social deduction", "2021-01-18T10:01:41.251Z", 5},
		{"A truly Quacking Game; Quacks of Quedlinburg", "Wolfgang Warsch", "mallionaire", defaultImg, "Ever wish you could try your luck as a mid-18th century German restaurateur? This could be the game for you", "social deduction", "2021-01-18T10:01:41.251Z", 10},
		{"Build you own tour de Yorkshire", "Asger Harding Granerud", "mallionaire", defaultImg, "Cold rain pours on the faces of your team of cyclists", "social deduction", "2021-01-18T10:01:41.251Z", 10},
		{"That's just what an evil person would say!", "Fiona Lohoar", "mallionaire", defaultImg, "If you've ever wanted to accuse your siblings, cousins or friends of being part of a plot to murder everyone whilst secretly choosing which one of them should get the chop next - this is the game for you", "social deduction", "2021-01-18T10:01:41.251Z", 8},
		{"Scythe; you're gonna need a bigger table!", "Jamey Stegmaier", "mallionaire", defaultImg, "Spend 30 minutes just setting up all of the boards (!) meeple and decks", "social deduction", "2021-01-22T10:37:04.839Z", 100},
		{"Settlers of Catan: Don't Settle For Less", "Klaus Teuber", "mallionaire", defaultImg, "You have stumbled across an uncharted island rich in natural resources", "social deduction", "1970-01-10T02:08:38.400Z", 16},
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.Reviews.Table,
		schema.Reviews.Title, schema.Reviews.Designer, schema.Reviews.Owner,
		schema.Reviews.ReviewImgURL, schema.Reviews.ReviewBody, schema.Reviews.Category,
		schema.Reviews.CreatedAt, schema.Reviews.Votes)

	for _, row := range rows {
		if _, err := tx.Exec(ctx, query,
			row.title, row.designer, row.owner, row.imgURL, row.body, row.category, row.createdAt, row.votes); err != nil {
			return fmt.Errorf("seed: insert review %q: %w", row.title, err)
		}
	}
	return nil
}

type seedComment struct {
	author, body, createdAt string
	votes, reviewID         int
}

func seedComments(ctx context.Context, tx pgx.Tx) error {
	rows := []seedComment{
		{"bainesface", "I loved this game too!", "2017-11-22T12:43:33.389Z", 16, 2},
		{"mallionaire", "My dog loved this game too!", "2021-01-18T10:09:05.410Z", 13, 3},
		{"philippaclaire9", "I didn't know dogs could play games", "2021-01-18T10:09:48.110Z", 10, 3},
		{"bainesface", "EPIC board game!", "2017-11-22T12:36:03.389Z", 16, 2},
		{"mallionaire", "Now this is a story all about how, board games turned my life upside down", "2021-01-18T10:24:05.410Z", 13, 2},
		{"philippaclaire9", "Not sure about dogs, but my cat likes to get involved with board games, the boxes are their particular favourite", "2021-03-27T19:49:48.110Z", 10, 3},
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.Comments.Table,
		schema.Comments.Author, schema.Comments.Body, schema.Comments.Votes,
		schema.Comments.ReviewID, schema.Comments.CreatedAt)

	for _, row := range rows {
		if _, err := tx.Exec(ctx, query, row.author, row.body, row.votes, row.reviewID, row.createdAt); err != nil {
			return fmt.Errorf("seed: insert comment by %q: %w", row.author, err)
		}
	}
	return nil
}
