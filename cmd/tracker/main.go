// Command tracker is a terminal tracking view over the LocatePro backend.
// It fetches a shipment by tracking id, follows its live updates over Redis
// pub/sub, renders position changes on a console map surface, and can save a
// printable receipt of the current state.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/infrastructure/config"
	redisdb "github.com/locatepro/tracking-system/internal/infrastructure/db/redis"
	"github.com/locatepro/tracking-system/internal/tracking"
	"github.com/locatepro/tracking-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	baseURL := flag.String("base-url", cfg.APIBaseURL, "backend base URL")
	redisAddr := flag.String("redis", cfg.Redis.Addr, "redis address for live updates")
	token := flag.String("token", "", "bearer token for authenticated lookups")
	flag.Parse()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

	session := tracking.NewSession()
	if *token != "" {
		session.SetCredential(*token)
	}
	client := tracking.NewClient(*baseURL, session, log)

	var feed tracking.Subscriber
	if rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: *redisAddr, DB: cfg.Redis.DB}); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, live updates disabled")
		feed = noopFeed{}
	} else {
		defer rdb.Close()
		feed = tracking.NewFeed(rdb, log)
	}

	mapView := tracking.NewMapView(func() (tracking.Surface, error) {
		return &consoleSurface{out: os.Stdout}, nil
	}, log)

	tracker := tracking.NewTracker(client, feed, mapView, log)
	tracker.OnChange(func(s tracking.Snapshot) { printSnapshot(s) })
	defer tracker.Close()

	fmt.Println("Enter a tracking id (or \"receipt <file>\", \"quit\"):")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return
		case strings.HasPrefix(line, "receipt"):
			saveReceipt(tracker, strings.TrimSpace(strings.TrimPrefix(line, "receipt")))
		default:
			tracker.Submit(ctx, line)
		}
	}
}

func printSnapshot(s tracking.Snapshot) {
	switch s.State {
	case tracking.StateLoading:
		fmt.Println("looking up...")
	case tracking.StateError:
		fmt.Println(s.ErrorMessage)
	case tracking.StateResult:
		r := s.Record
		fmt.Printf("%s  %s  %.0f%%  %s -> %s\n",
			r.TrackingID, r.Status, r.DisplayProgress(), r.Origin, r.Destination)
		for _, ev := range r.Events {
			fmt.Printf("  %s  %s", ev.Time, ev.Text)
			if ev.Location != "" {
				fmt.Printf(" (%s)", ev.Location)
			}
			fmt.Println()
		}
	}
}

func saveReceipt(tracker *tracking.Tracker, path string) {
	snap := tracker.Snapshot()
	if snap.Record == nil {
		fmt.Println("no shipment loaded")
		return
	}
	if path == "" {
		path = snap.Record.TrackingID + "-receipt.html"
	}

	html, err := tracking.RenderReceipt(snap.Record)
	if err != nil {
		fmt.Println("receipt failed:", err)
		return
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		fmt.Println("receipt failed:", err)
		return
	}
	fmt.Println("receipt written to", path)
}

// consoleSurface renders map operations as log lines. It stands in for the
// browser map widget when tracking from a terminal.
type consoleSurface struct {
	out *os.File
}

func (s *consoleSurface) SetView(center domain.GeoPoint, zoom int, _ bool) {
	fmt.Fprintf(s.out, "[map] view %.4f,%.4f zoom %d\n", center.Lat, center.Lng, zoom)
}

func (s *consoleSurface) PlaceMarker(p domain.GeoPoint) {
	fmt.Fprintf(s.out, "[map] marker placed at %.4f,%.4f\n", p.Lat, p.Lng)
}

func (s *consoleSurface) MoveMarker(p domain.GeoPoint) {
	fmt.Fprintf(s.out, "[map] marker moved to %.4f,%.4f\n", p.Lat, p.Lng)
}

func (s *consoleSurface) SetMarkerLabel(label string) {
	fmt.Fprintf(s.out, "[map] %s\n", label)
}

func (s *consoleSurface) Close() {
	fmt.Fprintln(s.out, "[map] closed")
}

// noopFeed keeps the tracker functional when redis is unreachable; fetched
// records are shown without live updates.
type noopFeed struct{}

func (noopFeed) Subscribe(context.Context, string, func(tracking.Update)) error { return nil }
func (noopFeed) Unsubscribe()                                                   {}
func (noopFeed) UnsubscribeFrom(string)                                         {}
