package usecase_test

import (
	"context"

	"lupang-store/internal/data/entity"
)

// In-memory stand-ins for the document-store repositories.

type fakeUserRepo struct {
	users   map[string]*entity.User
	putErr  error
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Put(ctx context.Context, user *entity.User) error {
	if f.putErr != nil {
		return f.putErr
	}
	u := *user
	f.users[user.UserID] = &u
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			match := *u
			return &match, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Scan(ctx context.Context) ([]*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	users := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		match := *u
		users = append(users, &match)
	}
	return users, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	putErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Put(ctx context.Context, order *entity.Order) error {
	if f.putErr != nil {
		return f.putErr
	}
	o := *order
	f.orders[order.OrderID] = &o
	return nil
}

func (f *fakeOrderRepo) Scan(ctx context.Context) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		match := *o
		orders = append(orders, &match)
	}
	return orders, nil
}
