// Command client is a small terminal front end over the same catalog the
// API serves: it signs in with email/password, refreshes the chosen list
// through the observable store and renders it with the list view, applying
// an optional search query.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jotarsh7/Assignment-3/internal/database"
	"github.com/jotarsh7/Assignment-3/internal/gateway"
	"github.com/jotarsh7/Assignment-3/internal/liststore"
	"github.com/jotarsh7/Assignment-3/internal/listview"
	"github.com/jotarsh7/Assignment-3/internal/model"
	"github.com/jotarsh7/Assignment-3/internal/repository"
	"github.com/jotarsh7/Assignment-3/internal/utils"
)

// staticIdentity pins the gateway to the user that signed in.
type staticIdentity struct{ ownerID string }

func (s staticIdentity) CurrentOwnerID(context.Context) (string, bool) {
	return s.ownerID, s.ownerID != ""
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	list := flag.String("list", "movies", "which list to show: movies | favorites")
	query := flag.String("query", "", "case-insensitive filter over title/studio/description")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: client -email ... -password ... [-list movies|favorites] [-query ...]")
	}

	_ = godotenv.Load()
	db, err := database.Open(
		envOr("DB_USER", "root"), os.Getenv("DB_PASS"),
		envOr("DB_HOST", "localhost"), envOr("DB_PORT", "3306"),
		envOr("DB_NAME", "movies"))
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := repository.NewUserRepo(db)
	u, err := users.GetByEmail(ctx, *email)
	if err != nil || !utils.VerifyPassword(u.PasswordHash, *password) {
		log.Fatal("invalid credentials")
	}

	gw := gateway.New(
		repository.NewCatalogRepo(db),
		repository.NewFavoritesRepo(db),
		staticIdentity{ownerID: u.ID})

	store := liststore.New(gw)
	defer store.Close()

	view := listview.New(listview.NewHTTPLoader(), listview.Handlers{}, nil)
	view.Filter(*query)

	delivered := make(chan struct{}, 1)
	observer := func(movies []model.Movie) {
		view.UpdateList(movies)
		select {
		case delivered <- struct{}{}:
		default:
		}
	}

	switch *list {
	case "favorites":
		store.SubscribeFavorites(observer)
		store.RefreshFavorites(ctx)
	default:
		store.SubscribeCatalog(observer)
		store.RefreshCatalog(ctx)
	}

	select {
	case <-delivered:
		render(view)
	case <-ctx.Done():
		log.Fatal("timed out waiting for the list")
	}
}

func render(v *listview.ListView) {
	if v.Empty() {
		fmt.Println("No movies found.")
		return
	}
	for i := 0; i < v.Len(); i++ {
		row := v.Row(i)
		fmt.Printf("%-40s %-24s %s\n", row.Title, row.Studio, row.Rating)
	}
}
