package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTransitionOrderRepository struct{ mock.Mock }

func (m *MockTransitionOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockTransitionOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockTransitionOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockTransitionOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockTransitionOrderRepository) GetAllInCreatedStatusOlderThan(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTransitionHistoryRepository struct{ mock.Mock }

func (m *MockTransitionHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}
func (m *MockTransitionHistoryRepository) ListByOrder(_ context.Context, _ kernel.UUID) ([]order.StatusChange, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTransitionUoW struct{ mock.Mock }

func (m *MockTransitionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransitionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransitionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTransitionUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockStatusPublisher struct{ mock.Mock }

func (m *MockStatusPublisher) PublishStatusChanged(ctx context.Context, change order.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func restoreTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(kernel.NewUUID(), status, makeTestItems(t))
	require.NoError(t, err)
	return aggregate
}

func newTransitionHandler(
	factory commands.TransitionUoWFactory,
	publisher ports.OrderStatusPublisher,
) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(factory, publisher, nil, zap.NewNop())
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Created)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, "pago verificado")

	orderRepo := new(MockTransitionOrderRepository)
	historyRepo := new(MockTransitionHistoryRepository)
	publisher := new(MockStatusPublisher)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("order.StatusChange")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishStatusChanged", mock.Anything, mock.AnythingOfType("order.StatusChange")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	orderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RecordsTransitionInLedgerEntry(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Preparing)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Shipped, "salio con el repartidor")

	orderRepo := new(MockTransitionOrderRepository)
	historyRepo := new(MockTransitionHistoryRepository)
	uow := new(MockTransitionUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("StatusHistoryRepository").Return(historyRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	var recorded order.StatusChange
	historyRepo.On("Append", mock.Anything, mock.AnythingOfType("order.StatusChange")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(order.StatusChange)
		}).Return(nil).Once()

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, aggregate.ID(), recorded.OrderID())
	assert.Equal(t, order.Preparing, recorded.Previous())
	assert.Equal(t, order.Shipped, recorded.Next())
	assert.Equal(t, "salio con el repartidor", recorded.Comment())
}

func TestChangeOrderStatusCommandHandler_Handle_RepostSameStatusAppendsEntry(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Confirmed)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, "reconfirmado")

	orderRepo := new(MockTransitionOrderRepository)
	historyRepo := new(MockTransitionHistoryRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("order.StatusChange")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	historyRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly
	factory := new(MockTransitionUoWFactory)
	h := newTransitionHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Confirmed, "")

	uow := new(MockTransitionUoW)
	factory := new(MockTransitionUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := newTransitionHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(orderID, order.Confirmed, "")

	orderRepo := new(MockTransitionOrderRepository)
	historyRepo := new(MockTransitionHistoryRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Delivered)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, "")

	orderRepo := new(MockTransitionOrderRepository)
	historyRepo := new(MockTransitionHistoryRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.Delivered, aggregate.Status())
	historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Created)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Cancelled, "cliente se arrepintio")

	orderRepo := new(MockTransitionOrderRepository)
	historyRepo := new(MockTransitionHistoryRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("order.StatusChange")).
			Return(errors.New("append error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_PublishErrorDoesNotFail(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreTestOrder(t, order.Shipped)
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Delivered, "")

	orderRepo := new(MockTransitionOrderRepository)
	historyRepo := new(MockTransitionHistoryRepository)
	publisher := new(MockStatusPublisher)
	uow := new(MockTransitionUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("StatusHistoryRepository").Return(historyRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	historyRepo.On("Append", mock.Anything, mock.AnythingOfType("order.StatusChange")).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("PublishStatusChanged", mock.Anything, mock.AnythingOfType("order.StatusChange")).
		Return(errors.New("broker unavailable")).Once()

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newTransitionHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
