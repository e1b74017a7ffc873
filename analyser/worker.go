/*
DESCRIPTION
  worker.go provides a worker that runs one analysis in its own goroutine and
  reports its progress, units and outcome as messages on a channel.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analyser

import (
	"context"

	"github.com/ausocean/utils/logging"
)

// MessageKind identifies the kind of a worker Message.
type MessageKind uint8

// Worker message kinds.
const (
	MessageProgress MessageKind = iota // Progress holds the percentage of input consumed.
	MessageNALU                        // Unit and Position hold a parsed unit.
	MessageComplete                    // Sent once after all units.
	MessageError                       // Err holds the failure; no other message follows.
)

func (k MessageKind) String() string {
	switch k {
	case MessageProgress:
		return "progress"
	case MessageNALU:
		return "nalu"
	case MessageComplete:
		return "complete"
	case MessageError:
		return "error"
	}
	return "unknown"
}

// Message is sent by a worker started with Run.
type Message struct {
	Kind     MessageKind
	Progress float64
	Unit     Unit
	Position int
	Err      error
}

// Request describes one analysis for a worker.
type Request struct {
	// Input holds the bytestream, or its hex form if Hex is true.
	Input []byte
	Hex   bool

	Options Options
	Logger  logging.Logger // May be nil, in which case nothing is logged.
}

// Run starts a worker analysing the input described by req and returns the
// channel on which it reports. For each unit a MessageProgress and then a
// MessageNALU are sent, followed by a single MessageComplete. If the input
// is not valid hex only a MessageError is sent. The channel is closed when
// the worker returns.
//
// Cancelling ctx stops further messages from being sent; the analysis itself
// is not interrupted and the channel is still closed once it has finished.
func Run(ctx context.Context, req Request) <-chan Message {
	if req.Logger == nil {
		req.Logger = discardLogger()
	}
	ch := make(chan Message)
	go func() {
		defer close(ch)

		done := false
		send := func(m Message) {
			if done {
				return
			}
			select {
			case ch <- m:
			case <-ctx.Done():
				done = true
				req.Logger.Debug("worker cancelled", "error", ctx.Err())
			}
		}

		buf := req.Input
		if req.Hex {
			var err error
			buf, err = DecodeHex(string(req.Input))
			if err != nil {
				req.Logger.Error("could not decode input", "error", err)
				send(Message{Kind: MessageError, Err: err})
				return
			}
		}

		total := len(buf)
		p := NewParser(req.Options, req.Logger)
		p.Parse(buf, func(u Unit, pos int) {
			send(Message{Kind: MessageProgress, Progress: progress(u.End(), total)})
			send(Message{Kind: MessageNALU, Unit: u, Position: pos})
		})
		send(Message{Kind: MessageComplete, Progress: 100})
	}()
	return ch
}

// progress returns n as a percentage of total, clamped to [0, 100].
func progress(n, total int) float64 {
	if total <= 0 {
		return 100
	}
	v := float64(n) / float64(total) * 100
	switch {
	case v > 100:
		return 100
	case v < 0:
		return 0
	}
	return v
}
