package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// fakeMemberStore is an in-memory MemberStore for tests.
type fakeMemberStore struct {
	mu      sync.Mutex
	nextID  int64
	members map[int64]*domain.Member
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[int64]*domain.Member)}
}

var _ store.MemberStore = (*fakeMemberStore)(nil)

func (s *fakeMemberStore) Create(ctx context.Context, member *domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.members {
		if existing.Email == member.Email {
			return store.ErrEmailExists
		}
	}

	s.nextID++
	member.ID = s.nextID
	copied := *member
	s.members[member.ID] = &copied
	return nil
}

func (s *fakeMemberStore) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return nil, store.ErrMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (s *fakeMemberStore) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range s.members {
		if member.Email == email {
			copied := *member
			return &copied, nil
		}
	}
	return nil, store.ErrMemberNotFound
}

func (s *fakeMemberStore) Update(ctx context.Context, member *domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; !ok {
		return store.ErrMemberNotFound
	}
	copied := *member
	s.members[member.ID] = &copied
	return nil
}

func (s *fakeMemberStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		return store.ErrMemberNotFound
	}
	delete(s.members, id)
	return nil
}

// fakeFavoriteStore is an in-memory FavoriteStore that enforces the same
// uniqueness and referential rules as the Postgres implementation.
type fakeFavoriteStore struct {
	mu        sync.Mutex
	nextID    int64
	favorites []domain.Favorite
	stations  map[int64]string
}

func newFakeFavoriteStore(stations map[int64]string) *fakeFavoriteStore {
	return &fakeFavoriteStore{stations: stations}
}

var _ store.FavoriteStore = (*fakeFavoriteStore)(nil)

func (s *fakeFavoriteStore) Insert(ctx context.Context, favorite *domain.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stations[favorite.SourceStationID]; !ok {
		return store.ErrStationNotFound
	}
	if _, ok := s.stations[favorite.TargetStationID]; !ok {
		return store.ErrStationNotFound
	}

	for _, existing := range s.favorites {
		if existing.MemberID == favorite.MemberID &&
			existing.SourceStationID == favorite.SourceStationID &&
			existing.TargetStationID == favorite.TargetStationID {
			return store.ErrDuplicateFavorite
		}
	}

	s.nextID++
	favorite.ID = s.nextID
	s.favorites = append(s.favorites, *favorite)
	return nil
}

func (s *fakeFavoriteStore) FindAllByMember(ctx context.Context, memberID int64) ([]domain.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Favorite, 0)
	for _, favorite := range s.favorites {
		if favorite.MemberID == memberID {
			result = append(result, favorite)
		}
	}
	return result, nil
}

func (s *fakeFavoriteStore) FindByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, favorite := range s.favorites {
		if favorite.ID == id {
			copied := favorite
			return &copied, nil
		}
	}
	return nil, store.ErrFavoriteNotFound
}

func (s *fakeFavoriteStore) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, favorite := range s.favorites {
		if favorite.ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return store.ErrFavoriteNotFound
}

func (s *fakeFavoriteStore) ExistsByMemberAndStations(
	ctx context.Context,
	memberID, sourceStationID, targetStationID int64,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, favorite := range s.favorites {
		if favorite.MemberID == memberID &&
			favorite.SourceStationID == sourceStationID &&
			favorite.TargetStationID == targetStationID {
			return true, nil
		}
	}
	return false, nil
}

// staticNameResolver resolves station names from a fixed map.
type staticNameResolver struct {
	names map[int64]string
}

var _ store.StationNameResolver = (*staticNameResolver)(nil)

func (r *staticNameResolver) NameOf(ctx context.Context, id int64) (string, error) {
	name, ok := r.names[id]
	if !ok {
		return "", store.ErrStationNotFound
	}
	return name, nil
}

// stubTokenService issues predictable tokens and verifies only the ones
// it issued.
type stubTokenService struct {
	mu      sync.Mutex
	issued  map[string]string // token -> subject
	counter int
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{issued: make(map[string]string)}
}

var _ auth.TokenService = (*stubTokenService)(nil)

func (s *stubTokenService) Issue(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	token := fmt.Sprintf("token-%d", s.counter)
	s.issued[token] = email
	return token, nil
}

func (s *stubTokenService) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject, ok := s.issued[tokenString]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{Subject: subject}, nil
}
