package handlers

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ClienteServiceClient is the client API for cliente.ClienteService
type ClienteServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewClienteServiceClient builds ClienteServiceClient over connection
func NewClienteServiceClient(cc grpc.ClientConnInterface) *ClienteServiceClient {
	return &ClienteServiceClient{cc: cc}
}

func (c *ClienteServiceClient) GetByRUC(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.invoke(ctx, "GetByRUC", in, out, opts...)
}

func (c *ClienteServiceClient) GetAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	return out, c.invoke(ctx, "GetAll", in, out, opts...)
}

func (c *ClienteServiceClient) Search(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	return out, c.invoke(ctx, "Search", in, out, opts...)
}

func (c *ClienteServiceClient) Create(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.invoke(ctx, "Create", in, out, opts...)
}

func (c *ClienteServiceClient) Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	return out, c.invoke(ctx, "Update", in, out, opts...)
}

func (c *ClienteServiceClient) Patch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	return out, c.invoke(ctx, "Patch", in, out, opts...)
}

func (c *ClienteServiceClient) Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	return out, c.invoke(ctx, "Delete", in, out, opts...)
}

func (c *ClienteServiceClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, "/"+ClienteServiceName+"/"+method, in, out, opts...)
}
