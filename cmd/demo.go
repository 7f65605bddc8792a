package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linkedkit/linkedkit/pkg/doublylinked"
	"github.com/linkedkit/linkedkit/pkg/logger"
	"github.com/linkedkit/linkedkit/pkg/queue"
	"github.com/linkedkit/linkedkit/pkg/singlylinked"
	"github.com/linkedkit/linkedkit/pkg/stack"
)

const demoSeparator = "-----------------"

// positionalList is satisfied by both list implementations.
type positionalList interface {
	InsertAtHead(payload int) error
	InsertAtTail(payload int) error
	InsertAt(pos int, payload int) error
	DeleteFromHead() (int, error)
	DeleteFromTail() (int, error)
	DeleteAt(pos int) (int, error)
	Reverse() error
	Traverse() []int
	Dump() []string
	Bytes() int
}

// NewDemoCommand returns the command that replays an example session against every container.
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay an example session against every container",
		Long:  "Replay an example session against the doubly linked list, the singly linked list, the stack and the queue, printing the node layout after each phase.",
		RunE:  runDemo,
		Args:  cobra.NoArgs,
	}

	return cmd
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := ReadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	doubly, err := doublylinked.Create(-1,
		doublylinked.WithMaxNodes(cfg.Containers.MaxNodes),
		doublylinked.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("doubly linked list: %w", err)
	}
	if err := replayList(out, log.With(zap.String("structure", "doubly_linked")), doubly); err != nil {
		return fmt.Errorf("doubly linked list: %w", err)
	}

	singly := singlylinked.NewList[int](
		singlylinked.WithMaxNodes(cfg.Containers.MaxNodes),
		singlylinked.WithLogger(log),
	)
	if err := singly.InsertAtHead(-1); err != nil {
		return fmt.Errorf("singly linked list: %w", err)
	}
	if err := replayList(out, log.With(zap.String("structure", "singly_linked")), singly); err != nil {
		return fmt.Errorf("singly linked list: %w", err)
	}

	if err := replayStack(out); err != nil {
		return fmt.Errorf("stack: %w", err)
	}
	if err := replayQueue(out); err != nil {
		return fmt.Errorf("queue: %w", err)
	}

	log.Info("demo finished")
	return nil
}

func printLayout(out io.Writer, log logger.Logger, phase string, l positionalList) {
	fmt.Fprintln(out, demoSeparator)
	fmt.Fprintf(out, "%s\n", phase)
	for _, line := range l.Dump() {
		fmt.Fprintln(out, line)
	}
	payloads := l.Traverse()
	fmt.Fprintf(out, "payloads: %v\n", payloads)
	fmt.Fprintf(out, "size: %d\n", len(payloads))
	fmt.Fprintf(out, "bytes: %d\n", l.Bytes())

	log.Debug("demo phase", zap.String("phase", phase), zap.Ints("payloads", payloads))
}

func replayList(out io.Writer, log logger.Logger, l positionalList) error {
	if err := l.InsertAtHead(2); err != nil {
		return err
	}
	if err := l.InsertAtHead(1); err != nil {
		return err
	}
	if err := l.InsertAtTail(3); err != nil {
		return err
	}
	if err := l.InsertAtTail(4); err != nil {
		return err
	}
	printLayout(out, log, "after inserts at head and tail", l)

	if err := l.InsertAt(3, 5); err != nil {
		return err
	}
	printLayout(out, log, "after insert at position 3", l)

	if err := l.Reverse(); err != nil {
		return err
	}
	printLayout(out, log, "after reverse", l)

	if _, err := l.DeleteFromTail(); err != nil {
		return err
	}
	if _, err := l.DeleteFromHead(); err != nil {
		return err
	}
	printLayout(out, log, "after deletes from tail and head", l)

	if _, err := l.DeleteAt(0); err != nil {
		return err
	}
	if _, err := l.DeleteAt(1); err != nil {
		return err
	}
	printLayout(out, log, "after deletes at positions 0 and 1", l)

	return nil
}

func replayStack(out io.Writer) error {
	s := stack.New[int]()
	for i := 1; i <= 3; i++ {
		if err := s.Push(i); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, demoSeparator)
	fmt.Fprintln(out, "stack")
	for !s.IsEmpty() {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "pop: %d\n", v)
	}

	_, err := stack.Free(&s)
	return err
}

func replayQueue(out io.Writer) error {
	q := queue.New[int]()
	for i := 1; i <= 3; i++ {
		if err := q.Enqueue(i); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, demoSeparator)
	fmt.Fprintln(out, "queue")
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "dequeue: %d\n", v)
	}

	return nil
}
