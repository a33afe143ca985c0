package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"studio_orders/internal/catalog"
	"studio_orders/internal/domain/entities"
	mock_interfaces "studio_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"

	"studio_orders/internal/usecase/interfaces"
)

func testCatalog() *catalog.Catalog {
	return catalog.NewWithData(
		[]entities.ServiceCategory{
			{ID: "cat", Name: entities.Localized{"en": "Cat"}, DisplayOrder: 1, Active: true},
		},
		[]entities.Service{
			{
				ID:         "svc-fixed",
				CategoryID: "cat",
				Name:       entities.Localized{"en": "Fixed"},
				Price:      entities.PriceRange{Min: 150, Max: 150, Currency: "USD"},
				Active:     true,
			},
			{
				ID:         "svc-big",
				CategoryID: "cat",
				Name:       entities.Localized{"en": "Big"},
				Price:      entities.PriceRange{Min: 9000, Max: 15000, Currency: "USD"},
				Active:     true,
			},
		},
	)
}

func submittableData() entities.OrderData {
	return entities.OrderData{
		SelectedServices: []entities.SelectedService{{ServiceID: "svc-fixed", Priority: entities.ServicePriorityMedium}},
		ProjectDetails:   entities.ProjectDetails{Title: "Relaunch", Description: "Rebuild the site"},
		ContactInfo: entities.ContactInfo{
			FirstName: "Dana",
			LastName:  "Petrova",
			Email:     "Dana@Example.com",
			Timezone:  "Europe/Berlin",
		},
		AgreesToTerms: true,
	}
}

func newSubmissionUC(t *testing.T, ctrl *gomock.Controller) (
	*OrderSubmissionUseCase,
	*mock_interfaces.MockICustomerRepository,
	*mock_interfaces.MockIOrderRepository,
	*mock_interfaces.MockIOrderTrackingRepository,
) {
	t.Helper()
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	tracking := mock_interfaces.NewMockIOrderTrackingRepository(ctrl)
	uc := NewOrderSubmissionUseCase(testCatalog(), customers, orders, tracking, nil, nil, 0)
	return uc, customers, orders, tracking
}

func TestOrderSubmissionUseCase_Submit(t *testing.T) {
	meta := entities.TrackingMetadata{ClientIP: "203.0.113.9", UserAgent: "go-test"}

	t.Run("invalid payload performs no side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newSubmissionUC(t, ctrl)

		data := submittableData()
		data.SelectedServices = nil
		_, err := uc.Submit(context.Background(), data, meta)

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		found := false
		for _, d := range vErr.Details {
			if d == "At least one service must be selected" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected selection detail, got %v", vErr.Details)
		}
	})

	t.Run("unknown service id is a validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newSubmissionUC(t, ctrl)

		data := submittableData()
		data.SelectedServices = []entities.SelectedService{{ServiceID: "ghost"}}
		_, err := uc.Submit(context.Background(), data, meta)

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
	})

	t.Run("enterprise budget yields high priority and exact total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, tracking := newSubmissionUC(t, ctrl)

		data := submittableData()
		data.EstimatedBudget = entities.BudgetEnterprise

		customers.EXPECT().FindOrCreate(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, bool, error) {
				if c.Email != "dana@example.com" {
					t.Fatalf("expected lowercased email, got %q", c.Email)
				}
				if c.ID == "" || c.FirstName != "Dana" {
					t.Fatalf("unexpected candidate: %+v", c)
				}
				return c, true, nil
			},
		)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Priority != entities.OrderPriorityHigh {
					t.Fatalf("expected high priority, got %s", o.Priority)
				}
				if o.Total.Min != 150 || o.Total.Max != 150 || o.Total.Currency != "USD" {
					t.Fatalf("expected total {150,150,USD}, got %+v", o.Total)
				}
				if o.Status != entities.OrderStatusSubmitted {
					t.Fatalf("expected submitted status, got %s", o.Status)
				}
				return o, nil
			},
		)
		customers.EXPECT().AppendOrder(gomock.Any(), "dana@example.com", gomock.Any(), 150.0).DoAndReturn(
			func(_ context.Context, email, orderID string, max float64) (entities.Customer, error) {
				return entities.Customer{Email: email, OrderIDs: []string{orderID}, TotalOrderValue: max}, nil
			},
		)
		tracking.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderTrackingEntry{})).DoAndReturn(
			func(_ context.Context, e entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error) {
				if e.Status != entities.OrderStatusSubmitted {
					t.Fatalf("expected submitted tracking entry, got %s", e.Status)
				}
				if e.Metadata.ClientIP != "203.0.113.9" || e.Metadata.UserAgent != "go-test" {
					t.Fatalf("expected request metadata, got %+v", e.Metadata)
				}
				return e, nil
			},
		)

		res, err := uc.Submit(context.Background(), data, meta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CustomerCreated {
			t.Fatalf("expected a new customer")
		}
		if res.Order.ID == "" {
			t.Fatalf("expected an order id")
		}
	})

	t.Run("large total without bands yields medium priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, tracking := newSubmissionUC(t, ctrl)

		data := submittableData()
		data.SelectedServices = []entities.SelectedService{{ServiceID: "svc-big"}}

		customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, bool, error) {
				return c, true, nil
			},
		)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Priority != entities.OrderPriorityMedium {
					t.Fatalf("expected medium priority, got %s", o.Priority)
				}
				return o, nil
			},
		)
		customers.EXPECT().AppendOrder(gomock.Any(), gomock.Any(), gomock.Any(), 15000.0).Return(entities.Customer{Email: "dana@example.com"}, nil)
		tracking.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error) {
				return e, nil
			},
		)

		if _, err := uc.Submit(context.Background(), data, meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeat email reuses the existing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, tracking := newSubmissionUC(t, ctrl)

		existing := entities.Customer{
			ID:              "cust-1",
			Email:           "dana@example.com",
			FirstName:       "Dana",
			OrderIDs:        []string{"ORD-1"},
			TotalOrderValue: 500,
		}
		customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(existing, false, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.CustomerID != "cust-1" {
					t.Fatalf("expected order to reference existing customer, got %s", o.CustomerID)
				}
				return o, nil
			},
		)
		customers.EXPECT().AppendOrder(gomock.Any(), "dana@example.com", gomock.Any(), 150.0).DoAndReturn(
			func(_ context.Context, email, orderID string, max float64) (entities.Customer, error) {
				return entities.Customer{
					ID: "cust-1", Email: email,
					OrderIDs:        append(existing.OrderIDs, orderID),
					TotalOrderValue: existing.TotalOrderValue + max,
				}, nil
			},
		)
		tracking.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error) {
				return e, nil
			},
		)

		res, err := uc.Submit(context.Background(), submittableData(), meta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CustomerCreated {
			t.Fatalf("expected the existing customer to be reused")
		}
		if len(res.Customer.OrderIDs) != 2 {
			t.Fatalf("expected order list to grow by 1, got %v", res.Customer.OrderIDs)
		}
		if res.Customer.TotalOrderValue != 650 {
			t.Fatalf("expected running total 650, got %v", res.Customer.TotalOrderValue)
		}
	})

	t.Run("order id collision is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, tracking := newSubmissionUC(t, ctrl)

		customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, bool, error) {
				return c, true, nil
			},
		)
		first := orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrDuplicateOrderID)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			},
		)
		customers.EXPECT().AppendOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Customer{}, nil)
		tracking.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error) {
				return e, nil
			},
		)

		if _, err := uc.Submit(context.Background(), submittableData(), meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing customer row on append aborts the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, _ := newSubmissionUC(t, ctrl)

		customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, bool, error) {
				return c, true, nil
			},
		)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			},
		)
		customers.EXPECT().AppendOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Customer{}, interfaces.ErrCustomerNotFound)

		_, err := uc.Submit(context.Background(), submittableData(), meta)
		if !errors.Is(err, interfaces.ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("persistence failure aborts the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, _ := newSubmissionUC(t, ctrl)

		customers.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, bool, error) {
				return c, true, nil
			},
		)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("dynamo down"))

		_, err := uc.Submit(context.Background(), submittableData(), meta)
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo down, got %v", err)
		}
	})
}

// memCustomerRepo is an in-memory ICustomerRepository with the same
// atomicity contract as the DynamoDB implementation. Used to exercise the
// single-customer invariant under concurrent submissions.
type memCustomerRepo struct {
	mu      sync.Mutex
	byEmail map[string]entities.Customer
	creates int
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byEmail: map[string]entities.Customer{}}
}

func (r *memCustomerRepo) FindOrCreate(_ context.Context, candidate entities.Customer) (entities.Customer, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byEmail[candidate.Email]; ok {
		return existing, false, nil
	}
	r.byEmail[candidate.Email] = candidate
	r.creates++
	return candidate, true, nil
}

func (r *memCustomerRepo) GetByEmail(_ context.Context, email string) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byEmail[email], nil
}

func (r *memCustomerRepo) AppendOrder(_ context.Context, email, orderID string, orderMax float64) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.byEmail[email]
	c.OrderIDs = append(c.OrderIDs, orderID)
	c.TotalOrderValue += orderMax
	r.byEmail[email] = c
	return c, nil
}

type memOrderRepo struct {
	mu   sync.Mutex
	byID map[string]entities.Order
}

func (r *memOrderRepo) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID == nil {
		r.byID = map[string]entities.Order{}
	}
	if _, ok := r.byID[o.ID]; ok {
		return entities.Order{}, interfaces.ErrDuplicateOrderID
	}
	r.byID[o.ID] = o
	return o, nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.byID[id]
	if o.ID != "" {
		o.Status = status
		r.byID[id] = o
	}
	return o, nil
}

func (r *memOrderRepo) AppendNote(_ context.Context, id string, note entities.OrderNote) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.byID[id]
	if o.ID != "" {
		o.Notes = append(o.Notes, note)
		r.byID[id] = o
	}
	return o, nil
}

type memTrackingRepo struct {
	mu      sync.Mutex
	entries []entities.OrderTrackingEntry
}

func (r *memTrackingRepo) Append(_ context.Context, e entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *memTrackingRepo) ListByOrderID(_ context.Context, orderID string) ([]entities.OrderTrackingEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.OrderTrackingEntry
	for _, e := range r.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestOrderSubmissionUseCase_ConcurrentSameEmailSingleCustomer(t *testing.T) {
	customers := newMemCustomerRepo()
	uc := NewOrderSubmissionUseCase(testCatalog(), customers, &memOrderRepo{}, &memTrackingRepo{}, nil, nil, 0)

	const submissions = 16
	var wg sync.WaitGroup
	errs := make([]error, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Submit(context.Background(), submittableData(), entities.TrackingMetadata{})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("submission %d failed: %v", i, err)
		}
	}
	if customers.creates != 1 {
		t.Fatalf("expected exactly one customer record, got %d", customers.creates)
	}
	c, _ := customers.GetByEmail(context.Background(), "dana@example.com")
	if len(c.OrderIDs) != submissions {
		t.Fatalf("expected %d orders on the customer, got %d", submissions, len(c.OrderIDs))
	}
	if c.TotalOrderValue != 150*submissions {
		t.Fatalf("expected running total %d, got %v", 150*submissions, c.TotalOrderValue)
	}
}
