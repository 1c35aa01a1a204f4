// Package natsproblem carries problem details over NATS request/reply.
//
// Replies have a "status" header of either "ok" or "error". Error replies carry the problem
// document as body with the problem title as "reason" header.
package natsproblem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/3lvia/problemdetails"
	"github.com/3lvia/problemdetails/internal/observability"
	"github.com/3lvia/problemdetails/internal/tracemsg"
	"github.com/3lvia/problemdetails/render"
	"github.com/nats-io/nats.go"
)

const (
	StatusHeader      = "status"
	ReasonHeader      = "reason"
	ContentTypeHeader = "Content-Type"

	StatusOK    = "ok"
	StatusError = "error"
)

var ErrMalformedReply = errors.New("malformed problem reply")

// Reply builds the reply to msg. A nil err gives an ok reply with data as body.
func Reply(ctx context.Context, msg *nats.Msg, data []byte, err error) *nats.Msg {
	header := nats.Header{}
	if err == nil {
		header.Set(StatusHeader, StatusOK)
		return &nats.Msg{
			Header: tracemsg.Inject(ctx, header),
			Data:   data,
		}
	}

	p, ok := problemdetails.From(err)
	if !ok {
		p = problemdetails.MustNew(
			nil,
			subjectInstance(msg.Subject),
			http.StatusText(http.StatusInternalServerError),
			"the server could not handle the request",
			http.StatusInternalServerError)
	}

	doc := render.NewDocument(p)

	slog.Log(ctx, observability.ProblemLevel(doc.Status), "request failed",
		"subject", msg.Subject,
		"status", doc.Status,
		"title", doc.Title,
		"instance", doc.Instance,
		"error", err,
	)

	body, mErr := json.Marshal(doc)
	if mErr != nil {
		slog.ErrorContext(ctx, "failed to marshal problem", "error", mErr)
	}

	header.Set(StatusHeader, StatusError)
	header.Set(ReasonHeader, doc.Title)
	header.Set(ContentTypeHeader, render.ContentType)

	return &nats.Msg{
		Header: tracemsg.Inject(ctx, header),
		Data:   body,
	}
}

// Respond sends the reply built by Reply.
func Respond(ctx context.Context, msg *nats.Msg, data []byte, err error) error {
	return msg.RespondMsg(Reply(ctx, msg, data, err))
}

// Request sends data to subject and waits for the reply.
// When the responder replied with a problem, the returned error is a *problemdetails.Error carrying it.
func Request(ctx context.Context, nc *nats.Conn, subject string, data []byte) ([]byte, error) {
	resp, err := nc.RequestMsgWithContext(ctx, &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  tracemsg.NewHeader(ctx),
	})
	if err != nil {
		return nil, err
	}

	return Parse(subject, resp)
}

// Parse reads a reply built by Reply.
func Parse(subject string, resp *nats.Msg) ([]byte, error) {
	if resp.Header.Get(StatusHeader) == StatusOK {
		return resp.Data, nil
	}

	reason := resp.Header.Get(ReasonHeader)

	p, err := render.Decode(resp.Data)
	if err != nil {
		return nil, errors.Join(ErrMalformedReply, fmt.Errorf("reason: %q", reason), err)
	}

	return nil, problemdetails.NewErrorWithMessage(p, fmt.Sprintf("request to %s failed: %s", subject, reason))
}

func subjectInstance(subject string) *url.URL {
	return &url.URL{Scheme: "nats", Opaque: subject}
}
