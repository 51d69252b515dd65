package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/sched"
)

// Run starts the interactive preview and blocks until the user quits or ctx
// is canceled. Engine timers are delivered through the program's message
// loop, so carousel state is only ever touched from Update.
func Run(ctx context.Context, opts Options) error {
	var p *tea.Program
	post := func(fn func()) {
		if p != nil {
			p.Send(TimerMsg(fn))
		}
	}
	opts.Sched = sched.New(post)

	m := New(ctx, opts)
	p = tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		// Quit already tears the page down; a canceled context does not.
		fm.Close()
	}
	return err
}
