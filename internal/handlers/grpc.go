package handlers

import (
	"context"

	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/umalmyha/clientes/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ClienteServiceName is full gRPC name of cliente service
const ClienteServiceName = "cliente.ClienteService"

// ClienteServiceServer is the server API for cliente.ClienteService.
// Messages are protobuf well-known types, clientes travel as Struct with json field names.
type ClienteServiceServer interface {
	GetByRUC(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetAll(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Search(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	Create(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Update(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Patch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// ClienteServiceDesc describes cliente.ClienteService for grpc.Server
var ClienteServiceDesc = grpc.ServiceDesc{
	ServiceName: ClienteServiceName,
	HandlerType: (*ClienteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("GetByRUC", func(s ClienteServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
			return s.GetByRUC(ctx, in)
		}),
		unaryMethod("GetAll", func(s ClienteServiceServer, ctx context.Context, in *emptypb.Empty) (any, error) {
			return s.GetAll(ctx, in)
		}),
		unaryMethod("Search", func(s ClienteServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
			return s.Search(ctx, in)
		}),
		unaryMethod("Create", func(s ClienteServiceServer, ctx context.Context, in *structpb.Struct) (any, error) {
			return s.Create(ctx, in)
		}),
		unaryMethod("Update", func(s ClienteServiceServer, ctx context.Context, in *structpb.Struct) (any, error) {
			return s.Update(ctx, in)
		}),
		unaryMethod("Patch", func(s ClienteServiceServer, ctx context.Context, in *structpb.Struct) (any, error) {
			return s.Patch(ctx, in)
		}),
		unaryMethod("Delete", func(s ClienteServiceServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
			return s.Delete(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cliente.proto",
}

// RegisterClienteServiceServer registers cliente service implementation on gRPC server
func RegisterClienteServiceServer(s grpc.ServiceRegistrar, srv ClienteServiceServer) {
	s.RegisterService(&ClienteServiceDesc, srv)
}

func unaryMethod[Req proto.Message](name string, call func(ClienteServiceServer, context.Context, Req) (any, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newMessage[Req]()
			if err := dec(in); err != nil {
				return nil, err
			}

			s := srv.(ClienteServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ClienteServiceName + "/" + name}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(Req))
			})
		},
	}
}

func newMessage[M proto.Message]() M {
	var zero M
	return zero.ProtoReflect().New().Interface().(M)
}

// StructValidator validates struct according to its tags
type StructValidator interface {
	Validate(any) error
}

// ClienteGrpcHandler is gRPC handler for cliente service
type ClienteGrpcHandler struct {
	clienteSvc service.ClienteService
	validator  StructValidator
}

// NewClienteGrpcHandler builds ClienteGrpcHandler
func NewClienteGrpcHandler(clienteSvc service.ClienteService, validator StructValidator) *ClienteGrpcHandler {
	return &ClienteGrpcHandler{clienteSvc: clienteSvc, validator: validator}
}

// GetByRUC gets cliente by RUC
func (h *ClienteGrpcHandler) GetByRUC(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	c, err := h.clienteSvc.FindByRUC(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return clienteStruct(c)
}

// GetAll gets all clientes
func (h *ClienteGrpcHandler) GetAll(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	clientes, err := h.clienteSvc.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return clienteList(clientes)
}

// Search searches clientes by razon social
func (h *ClienteGrpcHandler) Search(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	clientes, err := h.clienteSvc.Search(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return clienteList(clientes)
}

// Create creates new cliente
func (h *ClienteGrpcHandler) Create(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	nc := newClienteFromStruct(req)
	if err := h.validator.Validate(&nc); err != nil {
		return nil, err
	}

	c, err := h.clienteSvc.Create(ctx, nc.cliente())
	if err != nil {
		return nil, err
	}
	return clienteStruct(c)
}

// Update replaces cliente, request carries target RUC in "ruc" and new data in "cliente"
func (h *ClienteGrpcHandler) Update(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	target := req.GetFields()["ruc"].GetStringValue()
	data := req.GetFields()["cliente"].GetStructValue()
	if target == "" || data == nil {
		return nil, apperrors.NewBadArgumentErr("cliente", "La solicitud debe incluir 'ruc' y 'cliente'.")
	}

	nc := newClienteFromStruct(data)
	if err := h.validator.Validate(&nc); err != nil {
		return nil, err
	}

	if err := h.clienteSvc.Update(ctx, target, nc.cliente()); err != nil {
		return nil, err
	}
	return new(emptypb.Empty), nil
}

// Patch partially updates cliente, request carries target RUC in "ruc" and field map in "changes"
func (h *ClienteGrpcHandler) Patch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	target := req.GetFields()["ruc"].GetStringValue()
	if target == "" {
		return nil, apperrors.NewBadArgumentErr("ruc", "El RUC es requerido.")
	}

	changes := req.GetFields()["changes"].GetStructValue().AsMap()
	c, err := h.clienteSvc.Patch(ctx, target, model.PatchFromMap(changes))
	if err != nil {
		return nil, err
	}
	return clienteStruct(c)
}

// Delete deletes cliente by RUC
func (h *ClienteGrpcHandler) Delete(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := h.clienteSvc.DeleteByRUC(ctx, req.GetValue()); err != nil {
		return nil, err
	}
	return new(emptypb.Empty), nil
}

func newClienteFromStruct(s *structpb.Struct) newCliente {
	f := s.GetFields()
	return newCliente{
		RUC:         f["ruc"].GetStringValue(),
		RazonSocial: f["razonSocial"].GetStringValue(),
		Telefono:    f["telefono"].GetStringValue(),
		Correo:      f["correo"].GetStringValue(),
		Direccion:   f["direccion"].GetStringValue(),
	}
}

func clienteFields(c *model.Cliente) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"ruc":         c.RUC,
		"razonSocial": c.RazonSocial,
		"telefono":    c.Telefono,
		"correo":      c.Correo,
		"direccion":   c.Direccion,
	}
}

func clienteStruct(c *model.Cliente) (*structpb.Struct, error) {
	return structpb.NewStruct(clienteFields(c))
}

func clienteList(clientes []*model.Cliente) (*structpb.ListValue, error) {
	values := make([]any, 0, len(clientes))
	for _, c := range clientes {
		values = append(values, clienteFields(c))
	}
	return structpb.NewList(values)
}

// ClienteStructToModel reads cliente from Struct produced by cliente service
func ClienteStructToModel(s *structpb.Struct) *model.Cliente {
	f := s.GetFields()
	return &model.Cliente{
		ID:          f["id"].GetStringValue(),
		RUC:         f["ruc"].GetStringValue(),
		RazonSocial: f["razonSocial"].GetStringValue(),
		Telefono:    f["telefono"].GetStringValue(),
		Correo:      f["correo"].GetStringValue(),
		Direccion:   f["direccion"].GetStringValue(),
	}
}
