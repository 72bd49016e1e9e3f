package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/models"
	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/pkg/logger"
	"vahanbazar/pkg/storage"
)

func testLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text", Output: "stderr"})
	if err != nil {
		panic(err)
	}
	return log
}

// fakeTx mirrors mongo transaction semantics over the in-memory repos: when
// the callback fails, every participating repo is restored to its prior state.
type fakeTx struct {
	brands   *fakeBrandRepo
	variants *fakeVariantRepo
	listings *fakeListingRepo
	images   *fakeImageRepo
}

func (t *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	brands := copyDocs(t.brands.brands)
	variants := copyDocs(t.variants.variants)
	listings := copyDocs(t.listings.listings)
	images := copyImageSets(t.images.images)

	if err := fn(ctx); err != nil {
		t.brands.brands = brands
		t.variants.variants = variants
		t.listings.listings = listings
		t.images.images = images
		return err
	}
	return nil
}

func copyDocs[T any](src map[primitive.ObjectID]*T) map[primitive.ObjectID]*T {
	out := make(map[primitive.ObjectID]*T, len(src))
	for id, doc := range src {
		copied := *doc
		out[id] = &copied
	}
	return out
}

func copyImageSets(src map[primitive.ObjectID][]*models.VehicleImage) map[primitive.ObjectID][]*models.VehicleImage {
	out := make(map[primitive.ObjectID][]*models.VehicleImage, len(src))
	for id, images := range src {
		copied := make([]*models.VehicleImage, 0, len(images))
		for _, img := range images {
			c := *img
			copied = append(copied, &c)
		}
		out[id] = copied
	}
	return out
}

type fakeBrandRepo struct {
	mu     sync.Mutex
	brands map[primitive.ObjectID]*models.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: make(map[primitive.ObjectID]*models.Brand)}
}

func (r *fakeBrandRepo) Create(ctx context.Context, brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.Name == brand.Name {
			return fmt.Errorf("brand %q: %w", brand.Name, interfaces.ErrDuplicateKey)
		}
	}
	brand.ID = primitive.NewObjectID()
	brand.CreatedAt = time.Now()
	brand.UpdatedAt = brand.CreatedAt
	copied := *brand
	r.brands[brand.ID] = &copied
	return nil
}

func (r *fakeBrandRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	brand, ok := r.brands[id]
	if !ok {
		return nil, fmt.Errorf("brand: %w", interfaces.ErrNotFound)
	}
	copied := *brand
	return &copied, nil
}

func (r *fakeBrandRepo) GetByName(ctx context.Context, name string) (*models.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, brand := range r.brands {
		if brand.Name == name {
			copied := *brand
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("brand: %w", interfaces.ErrNotFound)
}

func (r *fakeBrandRepo) List(ctx context.Context, page interfaces.Page) ([]*models.Brand, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Brand, 0, len(r.brands))
	for _, brand := range r.brands {
		copied := *brand
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBrandRepo) Update(ctx context.Context, brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[brand.ID]; !ok {
		return fmt.Errorf("brand: %w", interfaces.ErrNotFound)
	}
	for id, b := range r.brands {
		if id != brand.ID && b.Name == brand.Name {
			return fmt.Errorf("brand %q: %w", brand.Name, interfaces.ErrDuplicateKey)
		}
	}
	copied := *brand
	r.brands[brand.ID] = &copied
	return nil
}

func (r *fakeBrandRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[id]; !ok {
		return fmt.Errorf("brand: %w", interfaces.ErrNotFound)
	}
	delete(r.brands, id)
	return nil
}

type fakeVariantRepo struct {
	mu       sync.Mutex
	variants map[primitive.ObjectID]*models.VehicleModelVariant
}

func newFakeVariantRepo() *fakeVariantRepo {
	return &fakeVariantRepo{variants: make(map[primitive.ObjectID]*models.VehicleModelVariant)}
}

func (r *fakeVariantRepo) Create(ctx context.Context, variant *models.VehicleModelVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.variants {
		if v.VehicleModelID == variant.VehicleModelID && v.Name == variant.Name {
			return fmt.Errorf("variant %q: %w", variant.Name, interfaces.ErrDuplicateKey)
		}
	}
	variant.ID = primitive.NewObjectID()
	variant.CreatedAt = time.Now()
	variant.UpdatedAt = variant.CreatedAt
	copied := *variant
	r.variants[variant.ID] = &copied
	return nil
}

func (r *fakeVariantRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleModelVariant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	variant, ok := r.variants[id]
	if !ok {
		return nil, fmt.Errorf("variant: %w", interfaces.ErrNotFound)
	}
	copied := *variant
	return &copied, nil
}

func (r *fakeVariantRepo) GetByModelAndName(ctx context.Context, modelID primitive.ObjectID, name string) (*models.VehicleModelVariant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, variant := range r.variants {
		if variant.VehicleModelID == modelID && variant.Name == name {
			copied := *variant
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("variant: %w", interfaces.ErrNotFound)
}

func (r *fakeVariantRepo) ListByModel(ctx context.Context, modelID primitive.ObjectID) ([]*models.VehicleModelVariant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.VehicleModelVariant
	for _, variant := range r.variants {
		if variant.VehicleModelID == modelID {
			copied := *variant
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) Update(ctx context.Context, variant *models.VehicleModelVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.variants[variant.ID]; !ok {
		return fmt.Errorf("variant: %w", interfaces.ErrNotFound)
	}
	copied := *variant
	r.variants[variant.ID] = &copied
	return nil
}

func (r *fakeVariantRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.variants[id]; !ok {
		return fmt.Errorf("variant: %w", interfaces.ErrNotFound)
	}
	delete(r.variants, id)
	return nil
}

type fakeListingRepo struct {
	mu        sync.Mutex
	listings  map[primitive.ObjectID]*models.VehicleListing
	createErr error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[primitive.ObjectID]*models.VehicleListing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *models.VehicleListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return nil, fmt.Errorf("listing: %w", interfaces.ErrNotFound)
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter interfaces.ListingFilter, page interfaces.Page) ([]*models.VehicleListing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.VehicleListing
	for _, listing := range r.listings {
		if !matchListing(listing, filter) {
			continue
		}
		copied := *listing
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func matchListing(l *models.VehicleListing, f interfaces.ListingFilter) bool {
	if f.DealerID != "" && (l.Dealer == nil || l.Dealer.ID.Hex() != f.DealerID) {
		return false
	}
	if f.SellerID != "" && (l.Seller == nil || l.Seller.ID.Hex() != f.SellerID) {
		return false
	}
	if f.IsFeatured != nil && l.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.Status != "" && string(l.Status) != f.Status {
		return false
	}
	if f.Type != "" && string(l.Type) != f.Type {
		return false
	}
	if f.ApprovedOnly && l.Type == models.ListingTypeUsed && !l.Approved {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.Name), needle) &&
			!strings.Contains(strings.ToLower(l.Brand.Name), needle) {
			return false
		}
	}
	return true
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *models.VehicleListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.ID]; !ok {
		return fmt.Errorf("listing: %w", interfaces.ErrNotFound)
	}
	listing.UpdatedAt = time.Now()
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeListingRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("listing: %w", interfaces.ErrNotFound)
	}
	for key, value := range fields {
		switch key {
		case "stock":
			listing.Stock = value.(int)
		case "is_featured":
			listing.IsFeatured = value.(bool)
		case "approved":
			listing.Approved = value.(bool)
		}
	}
	listing.UpdatedAt = time.Now()
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return fmt.Errorf("listing: %w", interfaces.ErrNotFound)
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) CountByDealer(ctx context.Context, dealerID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, listing := range r.listings {
		if listing.Dealer != nil && listing.Dealer.ID == dealerID {
			total++
		}
	}
	return total, nil
}

type fakeImageRepo struct {
	mu     sync.Mutex
	images map[primitive.ObjectID][]*models.VehicleImage
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[primitive.ObjectID][]*models.VehicleImage)}
}

func (r *fakeImageRepo) InsertMany(ctx context.Context, images []*models.VehicleImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, img := range images {
		if img.ID.IsZero() {
			img.ID = primitive.NewObjectID()
		}
		copied := *img
		r.images[img.ListingID] = append(r.images[img.ListingID], &copied)
	}
	return nil
}

func (r *fakeImageRepo) ListByListing(ctx context.Context, listingID primitive.ObjectID) ([]*models.VehicleImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.VehicleImage, 0, len(r.images[listingID]))
	for _, img := range r.images[listingID] {
		copied := *img
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeImageRepo) DeleteByListing(ctx context.Context, listingID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.images, listingID)
	return nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", interfaces.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

type fakeDealershipRepo struct {
	mu          sync.Mutex
	dealerships map[primitive.ObjectID]*models.Dealership
	branches    map[primitive.ObjectID]*models.Branch
}

func newFakeDealershipRepo(dealerships ...*models.Dealership) *fakeDealershipRepo {
	repo := &fakeDealershipRepo{
		dealerships: make(map[primitive.ObjectID]*models.Dealership),
		branches:    make(map[primitive.ObjectID]*models.Branch),
	}
	for _, d := range dealerships {
		repo.dealerships[d.ID] = d
	}
	return repo
}

func (r *fakeDealershipRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Dealership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dealerships[id]
	if !ok {
		return nil, fmt.Errorf("dealership: %w", interfaces.ErrNotFound)
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDealershipRepo) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Dealership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.dealerships {
		if d.OwnerID == ownerID {
			copied := *d
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("dealership: %w", interfaces.ErrNotFound)
}

func (r *fakeDealershipRepo) CreateBranch(ctx context.Context, branch *models.Branch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	branch.ID = primitive.NewObjectID()
	copied := *branch
	r.branches[branch.ID] = &copied
	return nil
}

func (r *fakeDealershipRepo) GetBranch(ctx context.Context, id primitive.ObjectID) (*models.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	branch, ok := r.branches[id]
	if !ok {
		return nil, fmt.Errorf("branch: %w", interfaces.ErrNotFound)
	}
	copied := *branch
	return &copied, nil
}

func (r *fakeDealershipRepo) ListBranches(ctx context.Context, dealershipID primitive.ObjectID) ([]*models.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Branch
	for _, branch := range r.branches {
		if branch.DealershipID == dealershipID {
			copied := *branch
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeDealershipRepo) UpdateBranch(ctx context.Context, branch *models.Branch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.branches[branch.ID]; !ok {
		return fmt.Errorf("branch: %w", interfaces.ErrNotFound)
	}
	copied := *branch
	r.branches[branch.ID] = &copied
	return nil
}

func (r *fakeDealershipRepo) DeleteBranch(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.branches[id]; !ok {
		return fmt.Errorf("branch: %w", interfaces.ErrNotFound)
	}
	delete(r.branches, id)
	return nil
}

type fakeWishlistRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*models.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[primitive.ObjectID]*models.WishlistItem)}
}

func (r *fakeWishlistRepo) Create(ctx context.Context, item *models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.VehicleID == item.VehicleID {
			return fmt.Errorf("wishlist item: %w", interfaces.ErrDuplicateKey)
		}
	}
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeWishlistRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.WishlistItem
	for _, item := range r.items {
		if item.UserID == userID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) Delete(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.UserID == userID && item.VehicleID == vehicleID {
			delete(r.items, id)
			return nil
		}
	}
	return fmt.Errorf("wishlist item: %w", interfaces.ErrNotFound)
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking: %w", interfaces.ErrNotFound)
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, page interfaces.Page) ([]*models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) ListByBranches(ctx context.Context, branchIDs []primitive.ObjectID, page interfaces.Page) ([]*models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Booking
	for _, booking := range r.bookings {
		if booking.BranchID == nil {
			continue
		}
		for _, branchID := range branchIDs {
			if *booking.BranchID == branchID {
				copied := *booking
				out = append(out, &copied)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) CountByBranches(ctx context.Context, branchIDs []primitive.ObjectID, status models.BookingStatus) (int64, error) {
	bookings, _, err := r.ListByBranches(ctx, branchIDs, interfaces.Page{})
	if err != nil {
		return 0, err
	}
	var total int64
	for _, booking := range bookings {
		if status == "" || booking.Status == status {
			total++
		}
	}
	return total, nil
}

func (r *fakeBookingRepo) DailyCounts(ctx context.Context, branchIDs []primitive.ObjectID, since time.Time) ([]interfaces.DailyCount, error) {
	bookings, _, err := r.ListByBranches(ctx, branchIDs, interfaces.Page{})
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]int64)
	for _, booking := range bookings {
		if booking.CreatedAt.Before(since) {
			continue
		}
		byDay[booking.CreatedAt.Format("2006-01-02")]++
	}
	var out []interfaces.DailyCount
	for date, count := range byDay {
		out = append(out, interfaces.DailyCount{Date: date, Count: count})
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking: %w", interfaces.ErrNotFound)
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now()
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, page interfaces.Page) ([]*models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification: %w", interfaces.ErrNotFound)
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			total++
		}
	}
	return total, nil
}

// fakeStorage records uploads and deletes so tests can assert blob cleanup.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	failOn  int
	calls   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte), failOn: -1}
}

func (s *fakeStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failOn >= 0 && s.calls > s.failOn {
		return nil, fmt.Errorf("upload rejected")
	}
	s.objects[request.Key] = nil
	return &storage.UploadResponse{
		Key: request.Key,
		URL: "https://cdn.test/" + request.Key,
	}, nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) GetURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (s *fakeStorage) FileExists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}
