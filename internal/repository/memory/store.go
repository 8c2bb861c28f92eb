package memory

import (
	"sync"

	"cashbook-backend/internal/domain"
	"cashbook-backend/internal/repository"
)

// state is shared by every repository of one Store so cascades can cross tables.
// Records are stored by value and copied on the way in and out.
type state struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	businesses   map[string]domain.Business
	members      map[string]map[string]domain.Member // businessID -> userID -> member
	books        map[string]domain.Book
	transactions map[string]domain.Transaction
}

// Store is an in-memory implementation of every repository, for development and tests.
type Store struct {
	repository.UserRepository
	repository.BusinessRepository
	repository.MemberRepository
	repository.BookRepository
	repository.TransactionRepository
}

func NewStore() *Store {
	s := &state{
		users:        make(map[string]domain.User),
		businesses:   make(map[string]domain.Business),
		members:      make(map[string]map[string]domain.Member),
		books:        make(map[string]domain.Book),
		transactions: make(map[string]domain.Transaction),
	}
	return &Store{
		UserRepository:        &userRepository{s},
		BusinessRepository:    &businessRepository{s},
		MemberRepository:      &memberRepository{s},
		BookRepository:        &bookRepository{s},
		TransactionRepository: &transactionRepository{s},
	}
}

// deleteBookLocked removes a book and its transactions. Caller holds mu.
func (s *state) deleteBookLocked(id string) {
	for txID, tx := range s.transactions {
		if tx.BookID == id {
			delete(s.transactions, txID)
		}
	}
	delete(s.books, id)
}
