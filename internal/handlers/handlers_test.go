package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/interceptors"
	"github.com/umalmyha/clientes/internal/model"
	svcMocks "github.com/umalmyha/clientes/internal/service/mocks"
	"github.com/umalmyha/clientes/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const grpcConnBufSize = 1024 * 1024

const (
	testRUC        = "20123456789"
	testRazonSocia = "Comercial Andina SAC"
)

type handlersTestSuite struct {
	suite.Suite
	app            *echo.Echo
	validator      *validation.EchoValidator
	clienteSvcMock *svcMocks.ClienteService
	httpHandler    *ClienteHTTPHandler
	grpcServer     *grpc.Server
	bufListener    *bufconn.Listener
	bufDialer      func(context.Context, string) (net.Conn, error)
}

func (s *handlersTestSuite) SetupSuite() {
	v, err := validation.New()
	s.Require().NoError(err, "failed to build validator")
	s.validator = v
}

func (s *handlersTestSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.app = echo.New()
	s.app.Validator = s.validator
	s.app.HTTPErrorHandler = HTTPErrorHandler(s.app, logger)

	s.clienteSvcMock = svcMocks.NewClienteService(s.T())
	s.httpHandler = NewClienteHTTPHandler(s.clienteSvcMock)

	// start gRPC server
	s.bufListener = bufconn.Listen(grpcConnBufSize)
	s.grpcServer = grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.ErrorUnaryInterceptor(logger, interceptors.UnaryApplicableForService(ClienteServiceName)),
	))
	RegisterClienteServiceServer(s.grpcServer, NewClienteGrpcHandler(s.clienteSvcMock, s.validator))

	lis := s.bufListener
	srv := s.grpcServer
	go func() {
		_ = srv.Serve(lis)
	}()

	s.bufDialer = func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}
}

func (s *handlersTestSuite) TearDownTest() {
	s.grpcServer.Stop()
}

func (s *handlersTestSuite) testCliente() *model.Cliente {
	return &model.Cliente{
		ID:          "ecc770d9-4576-4f72-affa-8b1454246692",
		RUC:         testRUC,
		RazonSocial: testRazonSocia,
	}
}

func (s *handlersTestSuite) TestPostWithWrongPayload() {
	c, _ := s.echoContext(http.MethodPost, "/api/cliente", `{"ruc":"2012`)
	err := s.httpHandler.Post(c)
	s.Require().Error(err, "wrong payload has been provided but no error raised")
	s.Require().IsType(&echo.HTTPError{}, err, "error must be echo error")
}

func (s *handlersTestSuite) TestPostWithInvalidData() {
	c, rec := s.echoContext(http.MethodPost, "/api/cliente", `{"ruc":"123","razonSocial":"  ","correo":"bad"}`)
	err := s.httpHandler.Post(c)
	s.Require().Error(err, "invalid data in payload has been provided but no error raised")

	var payloadErr *validation.PayloadError
	s.Require().ErrorAs(err, &payloadErr, "error must be payload error")
	s.Assert().ElementsMatch([]string{"ruc", "razonSocial", "correo"}, payloadErr.Fields())

	s.app.HTTPErrorHandler(err, c)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body), "failed to decode error body")
	s.Assert().NotEmpty(body.Message)
	s.Assert().Len(body.Errors, 3)
}

func (s *handlersTestSuite) TestPostSuccessfully() {
	created := s.testCliente()
	s.clienteSvcMock.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Cliente) bool {
		return c.RUC == testRUC && c.RazonSocial == testRazonSocia
	})).Return(created, nil).Once()

	c, rec := s.echoContext(http.MethodPost, "/api/cliente", `{"ruc":"20123456789","razonSocial":"Comercial Andina SAC"}`)
	err := s.httpHandler.Post(c)
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal(http.StatusCreated, rec.Code, "response status code must be Created")

	var got model.Cliente
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
	s.Assert().Equal(*created, got)
}

func (s *handlersTestSuite) TestPostDuplicate() {
	s.clienteSvcMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Cliente")).
		Return(nil, apperrors.NewDuplicateRUCErr(testRUC)).Once()

	c, rec := s.echoContext(http.MethodPost, "/api/cliente", `{"ruc":"20123456789","razonSocial":"Comercial Andina SAC"}`)
	s.app.HTTPErrorHandler(s.httpHandler.Post(c), c)
	s.Require().Equal(http.StatusConflict, rec.Code, "duplicate must be reported as conflict")

	var body map[string]string
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Assert().Equal(testRUC, body["ruc"])
	s.Assert().NotEmpty(body["message"])
}

func (s *handlersTestSuite) TestGetNotFound() {
	s.clienteSvcMock.On("FindByRUC", mock.Anything, testRUC).
		Return(nil, apperrors.NewEntryNotFoundErr("No se encontró un cliente con RUC 20123456789.")).Once()

	c, rec := s.echoContext(http.MethodGet, "/api/cliente/"+testRUC, "")
	c.SetParamNames("ruc")
	c.SetParamValues(testRUC)

	s.app.HTTPErrorHandler(s.httpHandler.Get(c), c)
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Assert().Contains(rec.Body.String(), "No se encontró")
}

func (s *handlersTestSuite) TestSearchUsesAlias() {
	s.clienteSvcMock.On("Search", mock.Anything, "andina").Return([]*model.Cliente{s.testCliente()}, nil).Once()

	c, rec := s.echoContext(http.MethodGet, "/api/cliente/search?razonSocial=andina", "")
	err := s.httpHandler.Search(c)
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *handlersTestSuite) TestPutRename() {
	s.clienteSvcMock.On("Update", mock.Anything, testRUC, mock.MatchedBy(func(c *model.Cliente) bool {
		return c.RUC == "20987654321"
	})).Return(nil).Once()

	c, rec := s.echoContext(http.MethodPut, "/api/cliente/"+testRUC, `{"ruc":"20987654321","razonSocial":"Comercial Andina SAC"}`)
	c.SetParamNames("ruc")
	c.SetParamValues(testRUC)

	err := s.httpHandler.Put(c)
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal(http.StatusNoContent, rec.Code)
}

func (s *handlersTestSuite) TestPutWithoutBody() {
	c, rec := s.echoContext(http.MethodPut, "/api/cliente/"+testRUC, "")
	c.SetParamNames("ruc")
	c.SetParamValues(testRUC)

	s.app.HTTPErrorHandler(s.httpHandler.Put(c), c)
	s.Require().Equal(http.StatusBadRequest, rec.Code, "missing body must be rejected")
	s.clienteSvcMock.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlersTestSuite) TestPatchIgnoresPathParamsAndUnknownKeys() {
	updated := s.testCliente()
	updated.Telefono = "01-4567890"

	s.clienteSvcMock.On("Patch", mock.Anything, testRUC, mock.MatchedBy(func(p model.ClientePatch) bool {
		return p.Telefono != nil && *p.Telefono == "01-4567890" && p.RazonSocial == nil && p.Correo != nil && *p.Correo == ""
	})).Return(updated, nil).Once()

	c, rec := s.echoContext(http.MethodPatch, "/api/cliente/"+testRUC, `{"TELEFONO":"01-4567890","correo":null,"ruc":"11111111111","foo":1}`)
	c.SetParamNames("ruc")
	c.SetParamValues(testRUC)

	err := s.httpHandler.Patch(c)
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *handlersTestSuite) TestPatchEmptyBody() {
	s.clienteSvcMock.On("Patch", mock.Anything, testRUC, model.ClientePatch{}).
		Return(nil, apperrors.NewBadArgumentErr("changes", "No se proporcionaron campos para actualizar.")).Once()

	c, rec := s.echoContext(http.MethodPatch, "/api/cliente/"+testRUC, "")
	c.SetParamNames("ruc")
	c.SetParamValues(testRUC)

	s.app.HTTPErrorHandler(s.httpHandler.Patch(c), c)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlersTestSuite) TestDeleteSuccessfully() {
	s.clienteSvcMock.On("DeleteByRUC", mock.Anything, testRUC).Return(nil).Once()

	c, rec := s.echoContext(http.MethodDelete, "/api/cliente/"+testRUC, "")
	c.SetParamNames("ruc")
	c.SetParamValues(testRUC)

	err := s.httpHandler.DeleteByRUC(c)
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal(http.StatusNoContent, rec.Code)
}

func (s *handlersTestSuite) TestUnclassifiedErrorIsHidden() {
	s.clienteSvcMock.On("FindAll", mock.Anything).Return(nil, io.ErrUnexpectedEOF).Once()

	c, rec := s.echoContext(http.MethodGet, "/api/cliente", "")
	s.app.HTTPErrorHandler(s.httpHandler.GetAll(c), c)
	s.Require().Equal(http.StatusInternalServerError, rec.Code)
	s.Assert().NotContains(rec.Body.String(), io.ErrUnexpectedEOF.Error(), "internal details must not leak")
}

func (s *handlersTestSuite) TestClienteGrpcHandler() {
	t := s.T()
	require := s.Require()
	ctx := context.Background()

	conn, err := grpc.DialContext(ctx, "bufnet", grpc.WithContextDialer(s.bufDialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(err, "failed to create gRPC connection")
	defer conn.Close()

	client := NewClienteServiceClient(conn)
	cliente := s.testCliente()

	t.Log("create cliente")
	{
		s.clienteSvcMock.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Cliente) bool {
			return c.RUC == testRUC
		})).Return(cliente, nil).Once()

		req, err := structpb.NewStruct(map[string]any{"ruc": testRUC, "razonSocial": testRazonSocia})
		require.NoError(err)

		res, err := client.Create(ctx, req)
		require.NoError(err, "no error must be raised")
		require.Equal(cliente, ClienteStructToModel(res))
	}

	t.Log("create invalid cliente")
	{
		req, err := structpb.NewStruct(map[string]any{"ruc": "1"})
		require.NoError(err)

		_, err = client.Create(ctx, req)
		require.Equal(codes.InvalidArgument, status.Code(err), "invalid payload must be rejected")
	}

	t.Log("get missing cliente")
	{
		s.clienteSvcMock.On("FindByRUC", mock.Anything, "20000000000").
			Return(nil, apperrors.NewEntryNotFoundErr("missing")).Once()

		_, err := client.GetByRUC(ctx, wrapperspb.String("20000000000"))
		require.Equal(codes.NotFound, status.Code(err), "missing cliente must be not found")
	}

	t.Log("update to taken ruc")
	{
		s.clienteSvcMock.On("Update", mock.Anything, testRUC, mock.AnythingOfType("*model.Cliente")).
			Return(apperrors.NewDuplicateRUCErr("20987654321")).Once()

		req, err := structpb.NewStruct(map[string]any{
			"ruc":     testRUC,
			"cliente": map[string]any{"ruc": "20987654321", "razonSocial": testRazonSocia},
		})
		require.NoError(err)

		_, err = client.Update(ctx, req)
		require.Equal(codes.AlreadyExists, status.Code(err), "conflict must be reported as already exists")
	}

	t.Log("patch cliente")
	{
		s.clienteSvcMock.On("Patch", mock.Anything, testRUC, mock.MatchedBy(func(p model.ClientePatch) bool {
			return p.Direccion != nil && *p.Direccion == "Av. Arequipa 123"
		})).Return(cliente, nil).Once()

		req, err := structpb.NewStruct(map[string]any{
			"ruc":     testRUC,
			"changes": map[string]any{"direccion": "Av. Arequipa 123"},
		})
		require.NoError(err)

		_, err = client.Patch(ctx, req)
		require.NoError(err, "no error must be raised")
	}

	t.Log("get all clientes")
	{
		s.clienteSvcMock.On("FindAll", mock.Anything).Return([]*model.Cliente{cliente}, nil).Once()

		list, err := client.GetAll(ctx, new(emptypb.Empty))
		require.NoError(err, "no error must be raised")
		require.Len(list.GetValues(), 1, "incorrect number of clientes returned")
	}

	t.Log("unclassified error is internal")
	{
		s.clienteSvcMock.On("DeleteByRUC", mock.Anything, testRUC).Return(io.ErrUnexpectedEOF).Once()

		_, err := client.Delete(ctx, wrapperspb.String(testRUC))
		require.Equal(codes.Internal, status.Code(err))
		require.NotContains(err.Error(), io.ErrUnexpectedEOF.Error(), "internal details must not leak")
	}
}

func (s *handlersTestSuite) echoContext(method, target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
