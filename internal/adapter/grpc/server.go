package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	transferflowv1 "github.com/simaogato/transferflow-backend/internal/adapter/grpc/transferflow/v1"
	"github.com/simaogato/transferflow-backend/internal/domain"
	"github.com/simaogato/transferflow-backend/internal/usecase/overview"
	"github.com/simaogato/transferflow-backend/internal/usecase/transfer"
)

// Server implements the TransferService gRPC server
type Server struct {
	Registry        *transfer.Registry
	OverviewService *overview.OverviewService
	RecentLimit     int
}

var _ transferflowv1.TransferServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	registry *transfer.Registry,
	overviewService *overview.OverviewService,
	recentLimit int,
) *Server {
	return &Server{
		Registry:        registry,
		OverviewService: overviewService,
		RecentLimit:     recentLimit,
	}
}

// StartSession handles the StartSession RPC
func (s *Server) StartSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w := s.Registry.Start()
	return s.sessionResponse(ctx, w)
}

// GetSession handles the GetSession RPC
func (s *Server) GetSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, err := s.session(req)
	if err != nil {
		return nil, err
	}
	return s.sessionResponse(ctx, w)
}

// SelectChannel handles the SelectChannel RPC
func (s *Server) SelectChannel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, err := s.session(req)
	if err != nil {
		return nil, err
	}

	channel, err := domain.ParseChannel(stringField(req, "channel"))
	if err != nil {
		return nil, mapError(err)
	}
	if err := w.SelectChannel(channel); err != nil {
		return nil, mapError(err)
	}
	return s.sessionResponse(ctx, w)
}

// UpdateField handles the UpdateField RPC
func (s *Server) UpdateField(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, err := s.session(req)
	if err != nil {
		return nil, err
	}

	field := stringField(req, "field")
	if field == "" {
		return nil, status.Error(codes.InvalidArgument, "field is required")
	}
	if err := w.UpdateField(domain.Field(field), stringField(req, "value")); err != nil {
		return nil, mapError(err)
	}
	return s.sessionResponse(ctx, w)
}

// RequestConfirmation handles the RequestConfirmation RPC.
// A draft that fails validation is reported as InvalidArgument.
func (s *Server) RequestConfirmation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, err := s.session(req)
	if err != nil {
		return nil, err
	}

	if _, err := w.RequestConfirmation(ctx); err != nil {
		return nil, mapError(err)
	}
	return s.sessionResponse(ctx, w)
}

// Confirm handles the Confirm RPC. It returns as soon as the session is PROCESSING.
func (s *Server) Confirm(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, err := s.session(req)
	if err != nil {
		return nil, err
	}

	if err := w.Confirm(ctx); err != nil {
		return nil, mapError(err)
	}
	return s.sessionResponse(ctx, w)
}

// Cancel handles the Cancel RPC
func (s *Server) Cancel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, err := s.session(req)
	if err != nil {
		return nil, err
	}

	if err := w.Cancel(); err != nil {
		return nil, mapError(err)
	}
	return s.sessionResponse(ctx, w)
}

// Reset handles the Reset RPC
func (s *Server) Reset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, err := s.session(req)
	if err != nil {
		return nil, err
	}

	if err := w.Reset(); err != nil {
		return nil, mapError(err)
	}
	return s.sessionResponse(ctx, w)
}

// CloseSession handles the CloseSession RPC
func (s *Server) CloseSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := sessionID(req)
	if err != nil {
		return nil, err
	}

	if err := s.Registry.Close(id); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

// GetOverview handles the GetOverview RPC
func (s *Server) GetOverview(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	limit := s.RecentLimit
	if v, ok := req.GetFields()["limit"]; ok {
		if v.GetNumberValue() <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "limit must be positive")
		}
		limit = int(v.GetNumberValue())
	}

	result, err := s.OverviewService.GetOverview(ctx, limit)
	if err != nil {
		return nil, mapError(err)
	}

	accounts := make([]any, 0, len(result.Accounts))
	for _, account := range result.Accounts {
		accounts = append(accounts, map[string]any{
			"id":            account.ID,
			"name":          account.Name,
			"display_name":  account.DisplayName(),
			"masked_number": account.MaskedNumber,
			"balance":       account.Balance.StringFixed(2),
			"type":          string(account.Type),
		})
	}

	byType := make(map[string]any, len(result.BalancesByType))
	for accountType, balance := range result.BalancesByType {
		byType[string(accountType)] = balance.StringFixed(2)
	}

	recent := make([]any, 0, len(result.RecentTransfers))
	for _, record := range result.RecentTransfers {
		recent = append(recent, map[string]any{
			"id":     record.ID.String(),
			"from":   record.From,
			"to":     record.To,
			"amount": record.Amount.StringFixed(2),
			"date":   record.Date.Format(domain.DateLayout),
			"status": string(record.Status),
		})
	}

	return newStruct(map[string]any{
		"accounts":         accounts,
		"total_balance":    result.TotalBalance.StringFixed(2),
		"balances_by_type": byType,
		"recent_transfers": recent,
	})
}

// session resolves the session_id field of a request
func (s *Server) session(req *structpb.Struct) (*transfer.Workflow, error) {
	id, err := sessionID(req)
	if err != nil {
		return nil, err
	}

	w, err := s.Registry.Get(id)
	if err != nil {
		return nil, mapError(err)
	}
	return w, nil
}

// sessionResponse renders the session view, including the confirmation summary when one is pending
func (s *Server) sessionResponse(ctx context.Context, w *transfer.Workflow) (*structpb.Struct, error) {
	view := w.View()

	fields := make([]any, 0)
	for _, f := range view.Channel.Fields() {
		fields = append(fields, string(f))
	}

	draft := make(map[string]any)
	for f, v := range view.Draft.Values() {
		draft[string(f)] = v
	}

	out := map[string]any{
		"session_id":     view.SessionID.String(),
		"state":          string(view.State),
		"channel":        string(view.Channel),
		"channel_label":  view.Channel.Label(),
		"fields":         fields,
		"draft":          draft,
		"status_message": transfer.StatusMessage(view.State),
	}

	if view.ValidationError != nil {
		out["validation_error"] = map[string]any{
			"field":  string(view.ValidationError.Field),
			"reason": view.ValidationError.Reason,
		}
	}
	if view.SubmissionError != nil {
		out["submission_error"] = view.SubmissionError.Reason
	}
	if view.Receipt != nil {
		out["receipt"] = map[string]any{
			"id":         view.Receipt.ID.String(),
			"reference":  view.Receipt.Reference,
			"settled_at": view.Receipt.SettledAt.Format(time.RFC3339),
		}
	}

	if view.Snapshot != nil {
		summary, err := w.Summary(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		if summary != nil {
			rows := make([]any, 0, len(summary.Rows))
			for _, row := range summary.Rows {
				rows = append(rows, map[string]any{"label": row.Label, "value": row.Value})
			}
			out["summary"] = map[string]any{
				"method": summary.Method,
				"from":   summary.From,
				"to":     summary.To,
				"amount": summary.Amount,
				"rows":   rows,
			}
		}
	}

	return newStruct(out)
}

func sessionID(req *structpb.Struct) (uuid.UUID, error) {
	id, err := uuid.Parse(stringField(req, "session_id"))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid session_id format: %v", err)
	}
	return id, nil
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrUnknownChannel):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
