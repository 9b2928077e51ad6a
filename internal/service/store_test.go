package service_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/trm"

	"github.com/shopspring/decimal"
)

var errStorage = errors.New("storage unavailable")

// memStore хранит корзины и заказы в памяти и ведет себя как таблицы Postgres:
// уникальные ключи, внешний ключ строк на корзину и откат транзакции.
type memStore struct {
	baskets map[int64]entities.Basket
	lines   map[int64]map[int64]entities.BasketLine
	orders  map[int64]entities.Order

	nextBasketID int64
	nextOrderID  int64
	nextLineID   int64

	// failures[op] возвращается из операции op по одному разу на элемент
	failures map[string][]error
}

func newMemStore() *memStore {
	return &memStore{
		baskets:  make(map[int64]entities.Basket),
		lines:    make(map[int64]map[int64]entities.BasketLine),
		orders:   make(map[int64]entities.Order),
		failures: make(map[string][]error),
	}
}

func (s *memStore) failNext(op string, errs ...error) {
	s.failures[op] = append(s.failures[op], errs...)
}

func (s *memStore) fail(op string) error {
	queue := s.failures[op]
	if len(queue) == 0 {
		return nil
	}
	s.failures[op] = queue[1:]
	return queue[0]
}

type memSnapshot struct {
	baskets map[int64]entities.Basket
	lines   map[int64]map[int64]entities.BasketLine
	orders  map[int64]entities.Order
}

func (s *memStore) snapshot() memSnapshot {
	lines := make(map[int64]map[int64]entities.BasketLine, len(s.lines))
	for id, l := range s.lines {
		lines[id] = maps.Clone(l)
	}
	orders := make(map[int64]entities.Order, len(s.orders))
	for id, o := range s.orders {
		o.Lines = slices.Clone(o.Lines)
		orders[id] = o
	}
	return memSnapshot{
		baskets: maps.Clone(s.baskets),
		lines:   lines,
		orders:  orders,
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.baskets = snap.baskets
	s.lines = snap.lines
	s.orders = snap.orders
	// identity-колонки не откатываются, как и последовательности в Postgres
}

func (s *memStore) TodaysBasket(_ context.Context, shopperID int64, day time.Time) (entities.Basket, error) {
	if err := s.fail("TodaysBasket"); err != nil {
		return entities.Basket{}, err
	}
	var found entities.Basket
	for _, b := range s.baskets {
		if b.ShopperID == shopperID && b.CreatedOn.Equal(day) && b.ID > found.ID {
			found = b
		}
	}
	if found.ID == 0 {
		return entities.Basket{}, entities.ErrBasketNotFound
	}
	return found, nil
}

func (s *memStore) GetBasket(_ context.Context, basketID int64) (entities.Basket, error) {
	if err := s.fail("GetBasket"); err != nil {
		return entities.Basket{}, err
	}
	b, ok := s.baskets[basketID]
	if !ok {
		return entities.Basket{}, entities.ErrBasketNotFound
	}
	return b, nil
}

func (s *memStore) CreateBasket(_ context.Context, shopperID int64, day time.Time) (int64, error) {
	if err := s.fail("CreateBasket"); err != nil {
		return 0, err
	}
	for _, b := range s.baskets {
		if b.ShopperID == shopperID && b.CreatedOn.Equal(day) {
			return 0, errors.New("duplicate key value violates unique constraint")
		}
	}
	s.nextBasketID++
	s.baskets[s.nextBasketID] = entities.Basket{
		ID:        s.nextBasketID,
		ShopperID: shopperID,
		CreatedOn: day,
		CreatedAt: day,
	}
	return s.nextBasketID, nil
}

func (s *memStore) LineExists(_ context.Context, basketID, productID int64) (bool, error) {
	if err := s.fail("LineExists"); err != nil {
		return false, err
	}
	_, ok := s.lines[basketID][productID]
	return ok, nil
}

func (s *memStore) BasketOrdered(_ context.Context, basketID int64) (bool, error) {
	if err := s.fail("BasketOrdered"); err != nil {
		return false, err
	}
	for _, o := range s.orders {
		if o.BasketID == basketID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) InsertLine(_ context.Context, line entities.BasketLine) error {
	if err := s.fail("InsertLine"); err != nil {
		return err
	}
	if _, ok := s.baskets[line.BasketID]; !ok {
		return errors.New("insert violates foreign key constraint")
	}
	if _, ok := s.lines[line.BasketID][line.ProductID]; ok {
		return entities.ErrDuplicateLine
	}
	if s.lines[line.BasketID] == nil {
		s.lines[line.BasketID] = make(map[int64]entities.BasketLine)
	}
	s.lines[line.BasketID][line.ProductID] = line
	return nil
}

func (s *memStore) Lines(_ context.Context, basketID int64) ([]entities.BasketLine, error) {
	if err := s.fail("Lines"); err != nil {
		return nil, err
	}
	products := slices.Sorted(maps.Keys(s.lines[basketID]))
	out := make([]entities.BasketLine, 0, len(products))
	for _, p := range products {
		out = append(out, s.lines[basketID][p])
	}
	return out, nil
}

func (s *memStore) LineViews(ctx context.Context, basketID int64) ([]entities.LineView, error) {
	lines, err := s.Lines(ctx, basketID)
	if err != nil {
		return nil, err
	}
	var views []entities.LineView
	for i, l := range lines {
		views = append(views, entities.LineView{
			Index:              i + 1,
			ProductID:          l.ProductID,
			ProductDescription: fmt.Sprintf("product %d", l.ProductID),
			SellerName:         fmt.Sprintf("seller %d", l.SellerID),
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice,
			Total:              l.Total(),
		})
	}
	return views, nil
}

func (s *memStore) Total(_ context.Context, basketID int64) (decimal.Decimal, error) {
	if err := s.fail("Total"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, l := range s.lines[basketID] {
		total = total.Add(l.Total())
	}
	return total, nil
}

func (s *memStore) UpdateQuantity(_ context.Context, basketID, productID int64, quantity int) error {
	if err := s.fail("UpdateQuantity"); err != nil {
		return err
	}
	if l, ok := s.lines[basketID][productID]; ok {
		l.Quantity = quantity
		s.lines[basketID][productID] = l
	}
	return nil
}

func (s *memStore) DeleteLine(_ context.Context, basketID, productID int64) error {
	if err := s.fail("DeleteLine"); err != nil {
		return err
	}
	delete(s.lines[basketID], productID)
	return nil
}

func (s *memStore) DeleteLines(_ context.Context, basketID int64) error {
	if err := s.fail("DeleteLines"); err != nil {
		return err
	}
	delete(s.lines, basketID)
	return nil
}

func (s *memStore) DeleteBasket(_ context.Context, shopperID, basketID int64) error {
	if err := s.fail("DeleteBasket"); err != nil {
		return err
	}
	if len(s.lines[basketID]) > 0 {
		return errors.New("delete violates foreign key constraint")
	}
	if b, ok := s.baskets[basketID]; ok && b.ShopperID == shopperID {
		delete(s.baskets, basketID)
	}
	return nil
}

func (s *memStore) OrderByBasket(_ context.Context, basketID int64) (entities.Order, error) {
	if err := s.fail("OrderByBasket"); err != nil {
		return entities.Order{}, err
	}
	for _, o := range s.orders {
		if o.BasketID == basketID {
			return o, nil
		}
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (s *memStore) CreateOrder(_ context.Context, o entities.Order) (int64, error) {
	if err := s.fail("CreateOrder"); err != nil {
		return 0, err
	}
	for _, existing := range s.orders {
		if existing.BasketID == o.BasketID {
			return 0, errors.New("duplicate key value violates unique constraint")
		}
	}
	s.nextOrderID++
	o.ID = s.nextOrderID
	o.Lines = nil
	s.orders[o.ID] = o
	return o.ID, nil
}

func (s *memStore) CreateOrderLines(_ context.Context, orderID int64, lines []entities.OrderLine) error {
	if err := s.fail("CreateOrderLines"); err != nil {
		return err
	}
	o, ok := s.orders[orderID]
	if !ok {
		return errors.New("insert violates foreign key constraint")
	}
	for _, l := range lines {
		s.nextLineID++
		l.ID = s.nextLineID
		l.OrderID = orderID
		o.Lines = append(o.Lines, l)
	}
	s.orders[orderID] = o
	return nil
}

func (s *memStore) basketCount(shopperID int64) int {
	n := 0
	for _, b := range s.baskets {
		if b.ShopperID == shopperID {
			n++
		}
	}
	return n
}

// memTxManager повторяет семантику trm.Manager: вложенный Do присоединяется к внешней
// транзакции, ошибка внешнего Do откатывает все изменения.
type memTxManager struct {
	store *memStore
}

type memTxKey struct{}

type memTx struct {
	store *memStore
	snap  memSnapshot
	done  bool
}

func (t *memTx) Commit() error {
	t.done = true
	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.restore(t.snap)
	return nil
}

func (m *memTxManager) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	tx := &memTx{store: m.store, snap: m.store.snapshot()}
	return context.WithValue(ctx, memTxKey{}, tx), tx, nil
}

func (m *memTxManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return callback(ctx)
	}

	ctx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}
