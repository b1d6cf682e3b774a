package review

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockRepo struct {
	reviews map[int]*Review
	nextID  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{reviews: make(map[int]*Review), nextID: 1}
}

func (m *mockRepo) Create(ctx context.Context, review *Review) error {
	review.ID = m.nextID
	m.nextID++
	review.CreatedAt = time.Now()
	m.reviews[review.ID] = review
	return nil
}

func (m *mockRepo) ListByRestaurant(ctx context.Context, restaurantID int) ([]Review, error) {
	var out []Review
	for _, rev := range m.reviews {
		if rev.RestaurantID == restaurantID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int) (*Review, error) {
	rev, ok := m.reviews[id]
	if !ok {
		return nil, errors.New("review not found")
	}
	return rev, nil
}

func (m *mockRepo) SetOwnerReply(ctx context.Context, reviewID int, reply string) error {
	rev, ok := m.reviews[reviewID]
	if !ok {
		return errors.New("review not found")
	}
	now := time.Now()
	rev.OwnerReply = &reply
	rev.OwnerReplyAt = &now
	return nil
}

type stubDeliveries struct {
	delivered map[string]bool // customerID
}

func (s stubDeliveries) HasDeliveredOrder(ctx context.Context, customerID string, restaurantID int) (bool, error) {
	return s.delivered[customerID], nil
}

type stubOwners struct {
	ownerID string
}

func (s stubOwners) IsOwner(ctx context.Context, restaurantID int, userID string) (bool, error) {
	return userID == s.ownerID, nil
}

func newReviewFixture() (*Service, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(
		repo,
		stubDeliveries{delivered: map[string]bool{"cust-1": true}},
		stubOwners{ownerID: "owner-1"},
	)
	return svc, repo
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestAddReview_RequiresDeliveredOrder(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.AddReview(context.Background(), "cust-never-ordered", 10, 5, "great")
	if !errors.Is(err, ErrNotEligible) {
		t.Fatalf("expected ErrNotEligible, got %v", err)
	}
}

func TestAddReview_RejectsOutOfRangeRating(t *testing.T) {
	svc, _ := newReviewFixture()

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.AddReview(context.Background(), "cust-1", 10, rating, ""); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestAddReview_Success(t *testing.T) {
	svc, repo := newReviewFixture()

	review, err := svc.AddReview(context.Background(), "cust-1", 10, 4, "solid biryani")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.ID == 0 {
		t.Errorf("expected ID to be set")
	}
	if len(repo.reviews) != 1 {
		t.Errorf("expected 1 stored review, got %d", len(repo.reviews))
	}
}

func TestReply_RequiresOwnership(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.AddReview(context.Background(), "cust-1", 10, 4, "solid biryani")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = svc.Reply(context.Background(), "not-the-owner", review.ID, "thanks!")
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestReply_Success(t *testing.T) {
	svc, repo := newReviewFixture()

	review, err := svc.AddReview(context.Background(), "cust-1", 10, 4, "solid biryani")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Reply(context.Background(), "owner-1", review.ID, "thanks!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.reviews[review.ID]
	if stored.OwnerReply == nil || *stored.OwnerReply != "thanks!" {
		t.Errorf("owner reply not saved")
	}
}
