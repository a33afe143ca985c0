package handlers

import (
	"context"
	"sync"

	"studio_orders/internal/domain/entities"
)

// Minimal in-memory repositories for end-to-end handler tests.

type memCustomers struct {
	mu   sync.Mutex
	byID map[string]entities.Customer
}

func (m *memCustomers) FindOrCreate(_ context.Context, candidate entities.Customer) (entities.Customer, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byID == nil {
		m.byID = map[string]entities.Customer{}
	}
	if existing, ok := m.byID[candidate.Email]; ok {
		return existing, false, nil
	}
	m.byID[candidate.Email] = candidate
	return candidate, true, nil
}

func (m *memCustomers) GetByEmail(_ context.Context, email string) (entities.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[email], nil
}

func (m *memCustomers) AppendOrder(_ context.Context, email, orderID string, orderMax float64) (entities.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.byID[email]
	c.OrderIDs = append(c.OrderIDs, orderID)
	c.TotalOrderValue += orderMax
	m.byID[email] = c
	return c, nil
}

type memOrders struct {
	mu      sync.Mutex
	created []entities.Order
}

func (m *memOrders) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, o)
	return o, nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.created {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.created {
		if m.created[i].ID == id {
			m.created[i].Status = status
			return m.created[i], nil
		}
	}
	return entities.Order{}, nil
}

func (m *memOrders) AppendNote(_ context.Context, id string, note entities.OrderNote) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.created {
		if m.created[i].ID == id {
			m.created[i].Notes = append(m.created[i].Notes, note)
			return m.created[i], nil
		}
	}
	return entities.Order{}, nil
}

type memTracking struct {
	mu      sync.Mutex
	entries []entities.OrderTrackingEntry
}

func (m *memTracking) Append(_ context.Context, entry entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *memTracking) ListByOrderID(_ context.Context, orderID string) ([]entities.OrderTrackingEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.OrderTrackingEntry, 0)
	for _, e := range m.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}
