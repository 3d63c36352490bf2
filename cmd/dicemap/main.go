// Command dicemap loads a text map, prints hover labels or edge distances for
// a cell, or serves the hover service.
//
//	dicemap -map board.txt -from 1,2
//	dicemap -map board.txt -from 1,2 -distances -depth 3 -to 0,4
//	dicemap -map board.txt -config decay.yaml -listen :8080
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dicemap/bfs"
	"github.com/katalvlaran/dicemap/board"
	"github.com/katalvlaran/dicemap/decay"
	"github.com/katalvlaran/dicemap/internal/logger"
	"github.com/katalvlaran/dicemap/internal/server"
	"github.com/katalvlaran/dicemap/viewport"
)

func init() {
	logger.Init()
}

func main() {
	var mapPath, configPath, from, to, listen string
	var base, depth int
	var distances bool
	flag.StringVar(&mapPath, "map", "", "Path to the text map ('.' = cell, ' ' = hole)")
	flag.StringVar(&configPath, "config", "", "Optional YAML file with starting_value, decay_step, minimum_value")
	flag.StringVar(&from, "from", "", "Print labels hovering ROW,COL")
	flag.BoolVar(&distances, "distances", false, "With -from, print edge distances instead of labels")
	flag.IntVar(&depth, "depth", 0, "With -distances, stop after this many edges (0 = no limit)")
	flag.StringVar(&to, "to", "", "With -distances, print a shortest path from -from to ROW,COL")
	flag.StringVar(&listen, "listen", os.Getenv("DICEMAP_ADDR"), "Serve the hover service on this address")
	flag.IntVar(&base, "base", viewport.DefaultBase, "Canvas height in pixels")
	flag.Parse()

	if mapPath == "" {
		logger.Log.Fatal("-map is required")
	}

	b, err := board.LoadFile(mapPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load map")
	}
	logger.Log.WithFields(logrus.Fields{
		"cells":  b.Len(),
		"height": b.Height(),
		"width":  b.Width(),
	}).Info("map loaded")

	opts := decay.DefaultOptions()
	if configPath != "" {
		if opts, err = decay.LoadOptionsFile(configPath); err != nil {
			logger.Log.WithError(err).Fatal("failed to load decay config")
		}
	}
	eng, err := decay.New(decay.WithOptions(opts))
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid decay options")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if from != "" {
		src, err := parseCoord(from)
		if err != nil {
			logger.Log.WithError(err).Fatal("bad -from")
		}
		if distances {
			if err := runDistances(ctx, os.Stdout, b, src, to, depth); err != nil {
				logger.Log.WithError(err).Fatal("distance search failed")
			}
		} else {
			labels, err := eng.Propagate(b, src)
			if err != nil {
				logger.Log.WithError(err).Fatal("propagation failed")
			}
			printLabels(os.Stdout, b, labels, eng.Options().Fallback(labels))
		}
	}

	if listen == "" {
		return
	}
	vp, err := viewport.ForBoard(b, base)
	if err != nil {
		logger.Log.WithError(err).Fatal("canvas setup failed")
	}

	srv := server.New(b, eng, vp, server.WithOnClick(func(c board.Coord) {
		logger.Log.WithField("cell", c).Info("cell selected")
	}))
	if err := srv.Run(ctx, listen); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
	logger.Log.Info("server stopped")
}

// parseCoord reads "ROW,COL".
func parseCoord(s string) (board.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return board.Coord{}, fmt.Errorf("want ROW,COL, got %q", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return board.Coord{}, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return board.Coord{}, fmt.Errorf("col: %w", err)
	}
	return board.Coord{Row: r, Col: c}, nil
}

// runDistances searches from src and prints the distance grid, then the path
// to dest when dest is not empty.
func runDistances(ctx context.Context, w io.Writer, b *board.Board, src board.Coord, dest string, depth int) error {
	res, err := bfs.BFS(b, src, bfs.WithContext(ctx), bfs.WithMaxDepth(depth))
	if err != nil {
		return err
	}
	printDistances(w, b, res)
	if dest == "" {
		return nil
	}
	target, err := parseCoord(dest)
	if err != nil {
		return fmt.Errorf("bad -to: %w", err)
	}
	path, err := res.PathTo(target)
	if err != nil {
		return err
	}
	printPath(w, path)
	return nil
}

// printDistances writes the edge distance of every reached cell, "-" for
// cells beyond the depth limit and blanks for holes.
func printDistances(w io.Writer, b *board.Board, res *bfs.Result) {
	for r := 0; r < b.Height(); r++ {
		var sb strings.Builder
		for c := 0; c < b.Width(); c++ {
			at := board.Coord{Row: r, Col: c}
			switch d, ok := res.Depth[at]; {
			case !b.Has(at):
				sb.WriteString("   ")
			case !ok:
				sb.WriteString("  -")
			default:
				fmt.Fprintf(&sb, "%3d", d)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

// printPath writes "ROW,COL -> ROW,COL -> ...".
func printPath(w io.Writer, path []board.Coord) {
	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = fmt.Sprintf("%d,%d", c.Row, c.Col)
	}
	fmt.Fprintf(w, "path (%d edges): %s\n", len(path)-1, strings.Join(steps, " -> "))
}

// printLabels writes one 3-wide column per grid position: the label, the
// fallback for unlabeled cells, blanks for holes.
func printLabels(w io.Writer, b *board.Board, labels decay.LabelMap, fallback int) {
	for r := 0; r < b.Height(); r++ {
		var sb strings.Builder
		for c := 0; c < b.Width(); c++ {
			at := board.Coord{Row: r, Col: c}
			if !b.Has(at) {
				sb.WriteString("   ")
				continue
			}
			fmt.Fprintf(&sb, "%3d", labels.Get(at, fallback))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}
