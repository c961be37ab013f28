package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	apimiddleware "github.com/wooteco-subway/favorite-api/internal/api/middleware"
	"github.com/wooteco-subway/favorite-api/internal/config"
	"github.com/wooteco-subway/favorite-api/internal/domain"
	"github.com/wooteco-subway/favorite-api/internal/service"
	"github.com/wooteco-subway/favorite-api/internal/service/auth"
	"github.com/wooteco-subway/favorite-api/internal/store"
)

// memMemberStore is an in-memory MemberStore for handler tests.
type memMemberStore struct {
	mu      sync.Mutex
	nextID  int64
	members map[int64]*domain.Member
}

var _ store.MemberStore = (*memMemberStore)(nil)

func newMemMemberStore() *memMemberStore {
	return &memMemberStore{members: make(map[int64]*domain.Member)}
}

func (s *memMemberStore) Create(ctx context.Context, member *domain.Member) error {
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

func (s *memMemberStore) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.members[id]
	if !ok {
		return nil, store.ErrMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (s *memMemberStore) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
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

func (s *memMemberStore) Update(ctx context.Context, member *domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[member.ID]; !ok {
		return store.ErrMemberNotFound
	}
	copied := *member
	s.members[member.ID] = &copied
	return nil
}

func (s *memMemberStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[id]; !ok {
		return store.ErrMemberNotFound
	}
	delete(s.members, id)
	return nil
}

// memFavoriteStore is an in-memory FavoriteStore mirroring the Postgres
// store's constraint behavior.
type memFavoriteStore struct {
	mu        sync.Mutex
	nextID    int64
	favorites []domain.Favorite
	stations  map[int64]string
}

var _ store.FavoriteStore = (*memFavoriteStore)(nil)

func newMemFavoriteStore(stations map[int64]string) *memFavoriteStore {
	return &memFavoriteStore{stations: stations}
}

func (s *memFavoriteStore) Insert(ctx context.Context, favorite *domain.Favorite) error {
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

func (s *memFavoriteStore) FindAllByMember(ctx context.Context, memberID int64) ([]domain.Favorite, error) {
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

func (s *memFavoriteStore) FindByID(ctx context.Context, id int64) (*domain.Favorite, error) {
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

func (s *memFavoriteStore) DeleteByID(ctx context.Context, id int64) error {
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

func (s *memFavoriteStore) ExistsByMemberAndStations(
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

// memStationResolver resolves station names from a fixed map.
type memStationResolver struct {
	names map[int64]string
}

var _ store.StationNameResolver = (*memStationResolver)(nil)

func (r *memStationResolver) NameOf(ctx context.Context, id int64) (string, error) {
	name, ok := r.names[id]
	if !ok {
		return "", store.ErrStationNotFound
	}
	return name, nil
}

// newTestRouter builds a router over in-memory stores with the same
// route layout as the production server.
func newTestRouter(stations map[int64]string) http.Handler {
	tokens, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:            "handler-test-secret-key-0123456789abcdef",
		TokenLifetimeMinutes: 60,
	})
	if err != nil {
		panic(err)
	}

	members := newMemMemberStore()
	favorites := newMemFavoriteStore(stations)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	memberService := service.NewMemberService(members, tokens, hasher, hasher, nil)
	favoriteService := service.NewFavoriteService(
		favorites, &memStationResolver{names: stations}, nil)
	identity := service.NewIdentityResolver(tokens, members, nil)

	memberHandler := NewMemberHandler(memberService, nil)
	favoriteHandler := NewFavoriteHandler(favoriteService, nil)
	authMiddleware := apimiddleware.NewAuthMiddleware(identity, nil)

	r := chi.NewRouter()
	r.Use(apimiddleware.TraceID)

	r.Post("/members", memberHandler.Register)
	r.Post("/oauth/token", memberHandler.IssueToken)

	r.Route("/me", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/", memberHandler.GetMe)
		r.Patch("/", memberHandler.UpdateMe)
		r.Delete("/", memberHandler.DeleteMe)

		r.Post("/favorites", favoriteHandler.Create)
		r.Get("/favorites", favoriteHandler.List)
		r.Get("/favorites/from/{sourceId}/to/{targetId}", favoriteHandler.Exists)
		r.Delete("/favorites/{favoriteId}", favoriteHandler.Delete)
	})

	return r
}
