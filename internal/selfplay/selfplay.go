// Package selfplay pits the engine against itself. Every game owns its own
// Game and Engine, so games run in parallel while each search stays
// single-threaded.
package selfplay

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"viruswar/internal/engine"
	"viruswar/internal/viruswar"
)

type Options struct {
	Games        int
	Workers      int
	Depth        int // 搜索深度，至少 1
	OpeningPlies int // 开局随机走的步数，用来让各局不同
	MaxPlies     int // 超过判和
}

type GameRecord struct {
	ID      string
	Winner  viruswar.Player
	Decided bool // false 表示到 MaxPlies 判和
	Plies   int
	Final   string // 终局 Encode()
	Hash    uint64
	Nodes   int64
}

type Summary struct {
	Records  []GameRecord
	BlueWins int
	RedWins  int
	Draws    int
	Distinct int // 不同终局的数量（按哈希）
	Elapsed  time.Duration
}

func (o Options) normalized() Options {
	if o.Games < 1 {
		o.Games = 1
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Depth < 1 {
		o.Depth = 1
	}
	if o.OpeningPlies < 0 {
		o.OpeningPlies = 0
	}
	if o.MaxPlies < 1 {
		o.MaxPlies = 1
	}
	return o
}

// Run 并行跑 opts.Games 局，最多 opts.Workers 局同时进行。
// 任何一局出错或 ctx 被取消，整体返回错误。
func Run(ctx context.Context, opts Options) (Summary, error) {
	opts = opts.normalized()
	start := time.Now()

	records := make([]GameRecord, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Games; i++ {
		i := i
		g.Go(func() error {
			rec, err := PlayGame(ctx, opts)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Records: records, Elapsed: time.Since(start)}
	finals := make(map[uint64]struct{}, len(records))
	for _, rec := range records {
		finals[rec.Hash] = struct{}{}
		switch {
		case !rec.Decided:
			sum.Draws++
		case rec.Winner == viruswar.Blue:
			sum.BlueWins++
		default:
			sum.RedWins++
		}
	}
	sum.Distinct = len(finals)

	log.WithFields(log.Fields{
		"games":     len(records),
		"blue_wins": sum.BlueWins,
		"red_wins":  sum.RedWins,
		"draws":     sum.Draws,
		"distinct":  sum.Distinct,
		"elapsed":   sum.Elapsed,
	}).Info("selfplay finished")
	return sum, nil
}

// PlayGame 从开局下到分出胜负或到达步数上限
func PlayGame(ctx context.Context, opts Options) (GameRecord, error) {
	opts = opts.normalized()
	game := viruswar.NewGame()
	e := engine.NewEngine()
	rec := GameRecord{ID: uuid.NewString()}
	entry := log.WithField("game_id", rec.ID)

	for {
		if err := ctx.Err(); err != nil {
			return rec, err
		}
		if winner, over := game.Winner(); over {
			rec.Winner = winner
			rec.Decided = true
			break
		}
		if rec.Plies >= opts.MaxPlies {
			break
		}

		var mv viruswar.BoardPos
		if rec.Plies < opts.OpeningPlies {
			moves := game.LegalMoves()
			mv = moves[frand.Intn(len(moves))]
		} else {
			res := e.Search(game, engine.SearchConfig{Depth: opts.Depth})
			rec.Nodes += res.Nodes
			mv = res.BestMove
		}
		if err := game.Play(mv); err != nil {
			return rec, fmt.Errorf("game %s ply %d: %w", rec.ID, rec.Plies, err)
		}
		rec.Plies++
		entry.WithFields(log.Fields{"ply": rec.Plies, "move": mv.String()}).Trace("played")
	}

	rec.Final = game.Encode()
	rec.Hash = game.Hash
	if rec.Decided {
		entry.WithFields(log.Fields{"winner": rec.Winner.String(), "plies": rec.Plies}).Info("game over")
	} else {
		entry.WithField("plies", rec.Plies).Info("game drawn at ply limit")
	}
	return rec, nil
}
