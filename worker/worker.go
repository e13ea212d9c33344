package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"comment-service/config"
	"comment-service/metrics"
	"comment-service/model"
	"comment-service/service"
	"comment-service/utils"

	"github.com/nats-io/nats.go"
)

// Worker serves comment fetches requested over NATS. Each request is handled to
// completion before its reply is sent; results are also published for listeners
// that did not make the request.
type Worker struct {
	config     *config.Config
	natsConn   *nats.Conn
	svc        *service.CommentService
	sub        *nats.Subscription
	cancelFunc context.CancelFunc
}

func NewWorker(cfg *config.Config, svc *service.CommentService) (*Worker, error) {
	nc, err := nats.Connect(cfg.NATSUrl,
		nats.Name(cfg.ServiceName+"-worker"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("Reconnected to NATS at %s", nc.ConnectedUrl())
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS connection lost: %v", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Worker{
		config:   cfg,
		natsConn: nc,
		svc:      svc,
	}, nil
}

func (w *Worker) Start(ctx context.Context) error {
	log.Println("Starting comment worker...")

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel

	sub, err := w.natsConn.Subscribe(utils.SubjectFetchComments, func(msg *nats.Msg) {
		w.handleFetchRequest(workerCtx, msg)
	})
	if err != nil {
		cancel()
		return err
	}
	w.sub = sub

	log.Printf("Successfully subscribed to %s", utils.SubjectFetchComments)
	return nil
}

func (w *Worker) Stop() {
	log.Println("Stopping comment worker...")
	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	if w.sub != nil {
		w.sub.Drain()
	}
	if w.natsConn != nil {
		w.natsConn.Close()
	}
}

func (w *Worker) handleFetchRequest(ctx context.Context, msg *nats.Msg) {
	result := w.process(ctx, msg.Data)

	status := "success"
	if !result.Success {
		status = "error"
	}
	metrics.NatsMessagesReceived.WithLabelValues(utils.SubjectFetchComments, status).Inc()

	resultData, err := json.Marshal(result)
	if err != nil {
		log.Printf("Failed to marshal fetch result: %v", err)
		return
	}

	if msg.Reply != "" {
		if err := msg.Respond(resultData); err != nil {
			log.Printf("Failed to respond to fetch request %s: %v", result.RequestID, err)
		}
	}
	w.publish(utils.SubjectFetchCommentsResult, resultData)

	log.Printf("Completed fetch request: %s (success=%t, comments=%d)", result.RequestID, result.Success, result.CommentsCount)
}

// process decodes one request and runs it through the comment pipeline.
func (w *Worker) process(ctx context.Context, data []byte) model.FetchResult {
	var req model.FetchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Printf("Failed to unmarshal fetch request: %v", err)
		return model.FetchResult{Error: "invalid request: " + err.Error(), ProcessedAt: time.Now()}
	}

	result := model.FetchResult{RequestID: req.RequestID}
	log.Printf("Processing fetch request: %+v", req)

	var (
		session model.Session
		err     error
	)
	switch {
	case req.VideoID != "":
		session, err = w.svc.ExtractVideo(ctx, req.VideoID, req.URL)
	case req.URL != "":
		session, err = w.svc.Extract(ctx, req.URL)
	default:
		err = fmt.Errorf("url or videoId is required")
	}

	result.ProcessedAt = time.Now()
	if err != nil {
		log.Printf("Failed to fetch comments for request %s: %v", req.RequestID, err)
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.VideoID = session.VideoID
	result.SessionID = session.ID
	result.CommentsCount = len(session.Records)
	result.RepliesCount = session.Replies()
	return result
}

func (w *Worker) publish(subject string, data []byte) {
	if err := w.natsConn.Publish(subject, data); err != nil {
		metrics.NatsMessagesPublished.WithLabelValues(subject, "error").Inc()
		log.Printf("Failed to publish to %s: %v", subject, err)
		return
	}
	metrics.NatsMessagesPublished.WithLabelValues(subject, "success").Inc()
}
