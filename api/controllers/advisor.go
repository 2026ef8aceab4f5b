package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bath14971-sudo/dom-car-finder/api/responses"
	"github.com/bath14971-sudo/dom-car-finder/api/validators"
	"github.com/bath14971-sudo/dom-car-finder/internal/advisor"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
)

const advisorApology = "I'm sorry, I ran into a problem answering that. Please try again."

// ChatStreamer opens a delta stream for one advisor conversation.
type ChatStreamer interface {
	StreamChat(ctx context.Context, messages []advisor.ChatMessage) (*advisor.Stream, error)
}

// AdvisorChat relays the gateway's delta stream to the browser as
// server-sent events. Failures before the first delta surface as a normal
// error response; failures mid-stream degrade to an apology delta because
// the status line is already gone.
func AdvisorChat(client ChatStreamer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload advisor.ChatRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "streaming unsupported"))
			return
		}

		stream, err := client.StreamChat(r.Context(), payload.Messages)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer stream.Close()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		for {
			delta, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				if logg != nil {
					logg.Error(r.Context(), "advisor stream interrupted", err)
				}
				writeDelta(w, advisorApology)
				flusher.Flush()
				break
			}
			if writeDelta(w, delta) != nil {
				// Client went away; nothing left to send.
				return
			}
			flusher.Flush()
		}

		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}
}

type deltaEvent struct {
	Choices []deltaChoice `json:"choices"`
}

type deltaChoice struct {
	Delta deltaContent `json:"delta"`
}

type deltaContent struct {
	Content string `json:"content"`
}

func writeDelta(w io.Writer, content string) error {
	event, err := json.Marshal(deltaEvent{
		Choices: []deltaChoice{{Delta: deltaContent{Content: content}}},
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", event)
	return err
}
