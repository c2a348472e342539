package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/example/components"
	"github.com/pthm/domcmp/lib/dom"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	store := NewStore()

	// Payload key (in production, use a real secret)
	enc, err := domcmp.NewEncoder([]byte("example-key-must-be-32-bytes!!"))
	if err != nil {
		log.Fatal(err)
	}

	page, err := renderPage(context.Background(), store, enc)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := dom.ParseString(page)
	if err != nil {
		log.Fatal(err)
	}

	e := domcmp.New(doc, domcmp.WithLogger(logger))
	if err := components.Init(e, store, enc); err != nil {
		log.Fatal(err)
	}

	// Queued until Init; the stats component sees it after activation.
	e.DispatchEvent(components.EventReady, nil)
	if err := e.Init(); err != nil {
		log.Fatal(err)
	}

	// Simulate a user session.
	for _, id := range []string{"#toggle-todo-1", "#delete-todo-2", "#add-todo"} {
		if _, err := doc.Click(id); err != nil {
			log.Fatal(err)
		}
	}
	if _, err := doc.Change("#filter-completed"); err != nil {
		log.Fatal(err)
	}

	stats := components.CurrentStats(e.Get("stats"))
	fmt.Printf("total=%d completed=%d pending=%d visible=%d\n",
		stats.Total, stats.Completed, stats.Pending, components.VisibleCount(e.Get("todolist")))
	for _, todo := range store.List(nil) {
		fmt.Printf("%s  %-9s  %s\n", todo.ID, todo.Status, todo.Title)
	}
}
