package listing

import (
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/clientes/internal/client"
	"github.com/umalmyha/clientes/internal/listing/mocks"
	"github.com/umalmyha/clientes/internal/model"
)

type controllerTestSuite struct {
	suite.Suite
	api       *mocks.ClienteAPI
	ctrl      *Controller
	confirmed bool
	mu        sync.Mutex
	terms     []string
}

func (s *controllerTestSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.api = mocks.NewClienteAPI(s.T())
	s.confirmed = true
	s.mu.Lock()
	s.terms = nil
	s.mu.Unlock()
	s.ctrl = NewController(s.api, logger, Options{
		SearchDelay: 20 * time.Millisecond,
		MessageTTL:  40 * time.Millisecond,
		Confirm:     func(string) bool { return s.confirmed },
		OnChange: func(st State) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if n := len(s.terms); n == 0 || s.terms[n-1] != st.SearchTerm {
				s.terms = append(s.terms, st.SearchTerm)
			}
		},
	})
}

func (s *controllerTestSuite) TearDownTest() {
	s.ctrl.Close()
}

func (s *controllerTestSuite) expectList() {
	s.api.On("List", mock.Anything).Return(testRecords(), nil).Once()
}

func (s *controllerTestSuite) loaded() {
	s.expectList()
	s.ctrl.Load()
}

func (s *controllerTestSuite) TestLoad() {
	s.loaded()

	st := s.ctrl.State()
	s.Require().Len(st.Records, 3)
	s.Require().False(st.Loading)
	s.Require().Empty(st.ErrorMessage)
}

func (s *controllerTestSuite) TestFailedLoadKeepsRecords() {
	s.loaded()

	s.api.On("List", mock.Anything).Return(nil, &client.APIError{Status: http.StatusInternalServerError}).Once()
	s.ctrl.Load()

	st := s.ctrl.State()
	s.Require().Len(st.Records, 3, "previously loaded records must stay")
	s.Require().Equal(client.InternalErrorMessage, st.ErrorMessage)
}

func (s *controllerTestSuite) TestSearchIsDebounced() {
	s.loaded()

	for _, raw := range []string{"a", "an", "andina"} {
		s.ctrl.Type(raw)
	}

	s.Require().Eventually(func() bool { return s.ctrl.State().SearchTerm == "andina" }, time.Second, 5*time.Millisecond)
	s.Require().Len(s.ctrl.State().Displayed(), 2)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().Equal([]string{"", "andina"}, s.terms, "intermediate terms must not be committed")
}

func (s *controllerTestSuite) TestRefreshClearsSearch() {
	s.loaded()
	s.ctrl.Type("acme")
	s.Require().Eventually(func() bool { return s.ctrl.State().SearchTerm == "acme" }, time.Second, 5*time.Millisecond)

	s.expectList()
	s.ctrl.Refresh()
	s.Require().Empty(s.ctrl.State().SearchTerm)
	s.Require().Len(s.ctrl.State().Displayed(), 3)
}

func (s *controllerTestSuite) TestSaveInvalidFormIsNotSubmitted() {
	s.ctrl.BeginCreate()
	s.ctrl.SetField(FieldRUC, "123")

	s.Require().False(s.ctrl.Save())

	st := s.ctrl.State()
	s.Require().True(st.FormOpen)
	s.Require().Equal(FormErrorsMessage, st.FormError)
	s.api.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *controllerTestSuite) TestCreate() {
	s.loaded()

	s.ctrl.BeginCreate()
	s.ctrl.SetField(FieldRUC, "20123456789")
	s.ctrl.SetField(FieldRazonSocial, "Nueva SAC")

	s.api.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Cliente) bool {
		return c.RUC == "20123456789" && c.RazonSocial == "Nueva SAC"
	})).Return(&model.Cliente{RUC: "20123456789"}, nil).Once()
	s.expectList()

	s.Require().True(s.ctrl.Save())

	st := s.ctrl.State()
	s.Require().False(st.FormOpen)
	s.Require().Equal(CreatedMessage, st.SuccessMessage)

	s.Require().Eventually(func() bool { return s.ctrl.State().SuccessMessage == "" }, time.Second, 5*time.Millisecond)
}

func (s *controllerTestSuite) TestEditRenamesToNewRUC() {
	s.loaded()

	s.Require().True(s.ctrl.BeginEdit("20100000001"))
	s.ctrl.SetField(FieldRUC, "20999999999")

	s.api.On("Update", mock.Anything, "20100000001", mock.MatchedBy(func(c *model.Cliente) bool {
		return c.RUC == "20999999999" && c.RazonSocial == "Acme SAC"
	})).Return(nil).Once()
	s.expectList()

	s.Require().True(s.ctrl.Save())
	s.Require().Equal(UpdatedMessage, s.ctrl.State().SuccessMessage)
}

func (s *controllerTestSuite) TestFailedSaveKeepsForm() {
	s.loaded()
	s.ctrl.BeginCreate()
	s.ctrl.SetField(FieldRUC, "20100000001")
	s.ctrl.SetField(FieldRazonSocial, "Duplicado")

	s.api.On("Create", mock.Anything, mock.Anything).Return(nil, &client.APIError{
		Status: http.StatusConflict,
		Body:   []byte(`{"message":"Ya existe un cliente con RUC 20100000001","ruc":"20100000001"}`),
	}).Once()

	s.Require().False(s.ctrl.Save())

	st := s.ctrl.State()
	s.Require().True(st.FormOpen)
	s.Require().False(st.Saving)
	s.Require().Equal("Ya existe un cliente con RUC 20100000001", st.FormError)
	s.Require().Equal("Duplicado", st.Form.RazonSocial)
	s.api.AssertNumberOfCalls(s.T(), "List", 1)
}

func (s *controllerTestSuite) TestDeleteRequiresConfirmation() {
	s.confirmed = false
	s.Require().False(s.ctrl.Delete("20100000001"))
	s.api.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *controllerTestSuite) TestDelete() {
	s.loaded()

	s.api.On("Delete", mock.Anything, "20100000001").Return(nil).Once()
	s.expectList()

	s.Require().True(s.ctrl.Delete("20100000001"))
	s.Require().Equal(DeletedMessage, s.ctrl.State().SuccessMessage)
}

func (s *controllerTestSuite) TestFailedDelete() {
	s.loaded()

	s.api.On("Delete", mock.Anything, "20100000001").Return(&client.APIError{Status: http.StatusNotFound}).Once()

	s.Require().False(s.ctrl.Delete("20100000001"))
	s.Require().Equal(client.NotFoundMessage, s.ctrl.State().ErrorMessage)
}

func (s *controllerTestSuite) TestDeleteFromDetails() {
	s.loaded()
	s.Require().True(s.ctrl.ShowDetails("10400000002"))

	s.api.On("Delete", mock.Anything, "10400000002").Return(nil).Once()
	s.expectList()

	s.Require().True(s.ctrl.DeleteFromDetails())
	s.Require().Nil(s.ctrl.State().Selected)
}

func (s *controllerTestSuite) TestCloseDropsLateResults() {
	started := make(chan struct{})
	s.api.On("List", mock.Anything).Return(func(ctx context.Context) []*model.Cliente {
		close(started)
		<-ctx.Done()
		return nil
	}, func(ctx context.Context) error {
		return ctx.Err()
	}).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.ctrl.Load()
	}()

	<-started
	s.ctrl.Close()
	<-done

	st := s.ctrl.State()
	s.Require().Empty(st.ErrorMessage, "result arrived after close must be dropped")
	s.Require().Nil(st.Records)
}

func (s *controllerTestSuite) TestCloseWaitsForMessageExpiry() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var (
		shownMu  sync.Mutex
		shown    bool
		once     sync.Once
		expiring = make(chan struct{})
		release  = make(chan struct{})
		finished = make(chan struct{})
	)
	ctrl := NewController(s.api, logger, Options{
		MessageTTL: 20 * time.Millisecond,
		OnChange: func(st State) {
			shownMu.Lock()
			wasShown := shown
			shown = shown || st.SuccessMessage != ""
			shownMu.Unlock()
			if st.SuccessMessage != "" || !wasShown {
				return
			}
			once.Do(func() {
				close(expiring)
				<-release
				close(finished)
			})
		},
	})

	s.api.On("Delete", mock.Anything, "20100000001").Return(nil).Once()
	s.expectList()
	s.Require().True(ctrl.Delete("20100000001"))

	select {
	case <-expiring:
	case <-time.After(time.Second):
		s.FailNow("message did not expire")
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		ctrl.Close()
	}()

	select {
	case <-closed:
		s.FailNow("close returned while OnChange was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-closed:
	case <-time.After(time.Second):
		s.FailNow("close did not return after OnChange finished")
	}

	select {
	case <-finished:
	default:
		s.Fail("OnChange must complete before close returns")
	}
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(controllerTestSuite))
}
