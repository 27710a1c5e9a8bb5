package infra

import (
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/auth"
	"github.com/umalmyha/clientes/internal/handlers"
	"github.com/umalmyha/clientes/internal/interceptors"
	"github.com/umalmyha/clientes/internal/metrics"
	"github.com/umalmyha/clientes/internal/service"
	"google.golang.org/grpc"
)

// GrpcServer builds gRPC server serving cliente service, nil jwtValidator disables auth
func GrpcServer(
	clienteSvc service.ClienteService,
	validator handlers.StructValidator,
	jwtValidator *auth.JwtValidator,
	m *metrics.Metrics,
	logger logrus.FieldLogger,
) *grpc.Server {
	clienteOnly := interceptors.UnaryApplicableForService(handlers.ClienteServiceName)

	chain := []grpc.UnaryServerInterceptor{interceptors.LoggingUnaryInterceptor(logger, m)}
	if jwtValidator != nil {
		chain = append(chain, interceptors.AuthUnaryInterceptor(jwtValidator, clienteOnly))
	}
	chain = append(chain, interceptors.ErrorUnaryInterceptor(logger, clienteOnly))

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
	handlers.RegisterClienteServiceServer(server, handlers.NewClienteGrpcHandler(clienteSvc, validator))
	return server
}
