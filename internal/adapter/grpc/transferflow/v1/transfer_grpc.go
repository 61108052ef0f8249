// Package transferflowv1 describes the TransferService gRPC API declared in
// proto/transferflow/v1/transfer.proto. Messages are google.protobuf.Struct
// values, so the service and client below are written by hand.
package transferflowv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "transferflow.v1.TransferService"

// Method names
const (
	MethodStartSession        = "StartSession"
	MethodGetSession          = "GetSession"
	MethodSelectChannel       = "SelectChannel"
	MethodUpdateField         = "UpdateField"
	MethodRequestConfirmation = "RequestConfirmation"
	MethodConfirm             = "Confirm"
	MethodCancel              = "Cancel"
	MethodReset               = "Reset"
	MethodCloseSession        = "CloseSession"
	MethodGetOverview         = "GetOverview"
)

// TransferServiceServer is the server API for TransferService
type TransferServiceServer interface {
	StartSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectChannel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateField(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RequestConfirmation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Confirm(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Cancel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Reset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CloseSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetOverview(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(TransferServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TransferServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TransferServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// TransferService_ServiceDesc is the grpc.ServiceDesc for TransferService
var TransferService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TransferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodStartSession, TransferServiceServer.StartSession),
		unaryHandler(MethodGetSession, TransferServiceServer.GetSession),
		unaryHandler(MethodSelectChannel, TransferServiceServer.SelectChannel),
		unaryHandler(MethodUpdateField, TransferServiceServer.UpdateField),
		unaryHandler(MethodRequestConfirmation, TransferServiceServer.RequestConfirmation),
		unaryHandler(MethodConfirm, TransferServiceServer.Confirm),
		unaryHandler(MethodCancel, TransferServiceServer.Cancel),
		unaryHandler(MethodReset, TransferServiceServer.Reset),
		unaryHandler(MethodCloseSession, TransferServiceServer.CloseSession),
		unaryHandler(MethodGetOverview, TransferServiceServer.GetOverview),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "transferflow/v1/transfer.proto",
}

// RegisterTransferServiceServer registers srv on s
func RegisterTransferServiceServer(s grpc.ServiceRegistrar, srv TransferServiceServer) {
	s.RegisterService(&TransferService_ServiceDesc, srv)
}

// FullMethod returns the fully qualified method name used on the wire
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// TransferServiceClient is the client API for TransferService
type TransferServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTransferServiceClient creates a client on top of an existing connection
func NewTransferServiceClient(cc grpc.ClientConnInterface) *TransferServiceClient {
	return &TransferServiceClient{cc: cc}
}

// Call invokes one TransferService method
func (c *TransferServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TransferServiceClient) StartSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodStartSession, in, opts...)
}

func (c *TransferServiceClient) GetSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodGetSession, in, opts...)
}

func (c *TransferServiceClient) SelectChannel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodSelectChannel, in, opts...)
}

func (c *TransferServiceClient) UpdateField(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodUpdateField, in, opts...)
}

func (c *TransferServiceClient) RequestConfirmation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodRequestConfirmation, in, opts...)
}

func (c *TransferServiceClient) Confirm(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodConfirm, in, opts...)
}

func (c *TransferServiceClient) Cancel(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodCancel, in, opts...)
}

func (c *TransferServiceClient) Reset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodReset, in, opts...)
}

func (c *TransferServiceClient) CloseSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodCloseSession, in, opts...)
}

func (c *TransferServiceClient) GetOverview(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Call(ctx, MethodGetOverview, in, opts...)
}

// SessionRequest builds the request for the session scoped methods
func SessionRequest(sessionID string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"session_id": structpb.NewStringValue(sessionID),
	}}
}
