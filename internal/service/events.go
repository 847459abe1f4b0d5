package service

import (
	"context"
	"sync"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/pgk/session"
)

type Transition struct {
	From model.OrderStatus
	To   model.OrderStatus
}

type EventHandler func(ctx context.Context, order *model.Order) error

// Events - таблица обработчиков переходов статуса заказа. Заполняется один раз в New.
type Events map[Transition][]EventHandler

func (e Events) On(from, to model.OrderStatus, h EventHandler) {
	key := Transition{From: from, To: to}
	e[key] = append(e[key], h)
}

func (e Events) Handlers(from, to model.OrderStatus) []EventHandler {
	return e[Transition{From: from, To: to}]
}

// transition сохраняет новый статус с заметкой, затем вызывает обработчики
// перехода. Ошибка обработчика логируется и не откатывает смену статуса.
func (s *Service) transition(ctx context.Context, order *model.Order, to model.OrderStatus, note string) error {
	from := order.Status

	if err := s.storage.UpdateStatus(ctx, order.ID, to, note); err != nil {
		return err
	}
	order.Status = to

	if from == to {
		return nil
	}

	for _, h := range s.events.Handlers(from, to) {
		if err := h(ctx, order); err != nil {
			s.lg.Errorf("order %d %s->%s handler error: %v", order.ID, from, to, err)
		}
	}

	return nil
}

// onLoanDeclined - после отказа шлюз больше не предлагается этому покупателю
func (s *Service) onLoanDeclined(ctx context.Context, _ *model.Order) error {
	return s.sessions.DisableGateway(ctx, session.FromContext(ctx))
}

func (s *Service) onOrderCompleted(ctx context.Context, order *model.Order) error {
	return s.CompleteOrder(ctx, order)
}

type refMutex struct {
	sync.Mutex
	refs int
}

// keyedMutex сериализует запись метаданных и смену статуса одного заказа.
// Запись удаляется, когда ее никто не держит.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*refMutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*refMutex)}
}

func (k *keyedMutex) Lock(id int64) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &refMutex{}
		k.locks[id] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
