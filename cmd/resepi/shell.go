package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/resepi/internal/conversation"
	"github.com/hammamikhairi/resepi/internal/detail"
	"github.com/hammamikhairi/resepi/internal/display"
	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/engine"
	"github.com/hammamikhairi/resepi/internal/logger"
	"github.com/hammamikhairi/resepi/internal/reveal"
)

const shellPrompt = "resepi> "

func runShell(cmd *cobra.Command, args []string) error {
	cfg, log, _, ctrl, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	sh := &shell{
		ctrl:      ctrl,
		parser:    conversation.NewKeywordParser(log),
		notifier:  conversation.NewCLINotifier(log, conversation.WriterPrintFunc(out)),
		out:       out,
		log:       log,
		threshold: cfg.RevealThreshold,
		stagger:   cfg.RevealStagger,
	}
	return sh.run(ctx, cmd.InOrStdin())
}

// shell is the line-oriented browser. Cards of each new page are printed
// in a staggered cascade, the way the grid reveals them.
type shell struct {
	ctrl      *engine.Controller
	parser    domain.EventParser
	notifier  domain.Notifier
	out       io.Writer
	log       *logger.Logger
	threshold float64
	stagger   time.Duration
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	fmt.Fprint(s.out, display.RenderBanner())
	fmt.Fprintln(s.out, "Ketik help untuk daftar perintah, quit untuk keluar.")
	if err := s.show(ctx); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, shellPrompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		quit, err := s.handle(ctx, sc.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handle applies one line. It reports true when the user asked to quit.
func (s *shell) handle(ctx context.Context, line string) (bool, error) {
	ev, err := s.parser.Parse(ctx, line)
	if err != nil {
		return false, err
	}
	ev = conversation.AsSearch(ev)

	switch ev.Type {
	case domain.EventQuit:
		return true, nil
	case domain.EventHelp:
		fmt.Fprintln(s.out, conversation.Help)
		return false, nil
	case domain.EventUnknown:
		return false, nil
	}

	dispatchErr := s.ctrl.Dispatch(ctx, *ev)
	if msg, urgent := conversation.Outcome(ev.Type, dispatchErr); msg != "" {
		if urgent {
			s.notifier.NotifyUrgent(ctx, msg)
		} else {
			s.notifier.Notify(ctx, msg)
		}
	}
	// Saving or removing from the open recipe leaves it on screen.
	keep := ev.Type == domain.EventSaveRecipe ||
		(ev.Type == domain.EventRemoveFavourite && s.ctrl.Selected() != nil)
	if dispatchErr != nil || keep {
		return false, nil
	}
	return false, s.show(ctx)
}

// show prints the current page, or the open recipe.
func (s *shell) show(ctx context.Context) error {
	v, err := s.ctrl.Snapshot(ctx)
	if err != nil {
		return err
	}

	if v.Selected != nil {
		out, err := detail.Render(detail.New(v.Selected), 80)
		if err != nil {
			s.log.Warn("detail: %v", err)
		}
		fmt.Fprintln(s.out, out)
		if v.SelectedSaved {
			fmt.Fprintln(s.out, "★ tersimpan · hapus favorit: hapus · close: kembali")
		} else {
			fmt.Fprintln(s.out, "simpan: Simpan Resep · close: kembali")
		}
		return nil
	}

	if v.ShowFavourites {
		fmt.Fprintf(s.out, "Resep Favorit (%d)\n", len(v.Favourites))
		if len(v.Favourites) == 0 {
			fmt.Fprintln(s.out, "Belum ada resep favorit")
			return nil
		}
		return s.cascade(ctx, v.Favourites)
	}

	fmt.Fprintln(s.out, v.Summary())
	if v.ShowFilterPanel {
		fmt.Fprintf(s.out, "Bahan populer: %s\n", strings.Join(v.Popular, ", "))
	}
	if v.Empty() {
		fmt.Fprintln(s.out, engine.EmptyTitle)
		fmt.Fprintln(s.out, v.EmptyHint())
		return nil
	}
	if err := s.cascade(ctx, v.Page); err != nil {
		return err
	}
	if v.ShowControls() {
		fmt.Fprintf(s.out, "%s · halaman %d/%d\n", v.RangeLine(), v.CurrentPage, v.TotalPages)
	} else {
		fmt.Fprintln(s.out, v.RangeLine())
	}
	return nil
}

// cascade prints cards in order as their reveal timers fire. With no
// scrolling surface every card is in view at once, so card i appears
// after i staggers.
func (s *shell) cascade(ctx context.Context, cards []domain.Recipe) error {
	settled := make(chan int, len(cards))
	sched := reveal.New(s.log,
		reveal.WithThreshold(s.threshold),
		reveal.WithStagger(s.stagger),
		reveal.WithNotifier(reveal.Immediate{}),
		reveal.WithOnReveal(func(_ uint64, index int) { settled <- index }),
	)
	defer sched.Stop()
	sched.Begin(len(cards))

	ready := make([]bool, len(cards))
	next := 0
	for next < len(cards) {
		select {
		case i := <-settled:
			ready[i] = true
		case <-ctx.Done():
			return ctx.Err()
		}
		for next < len(cards) && ready[next] {
			r := cards[next]
			fmt.Fprintf(s.out, "  %d. %-24s %-8s ★ %.1f\n", next+1, r.Name, r.Type.Label(), r.DisplayRating())
			next++
		}
	}
	return nil
}
