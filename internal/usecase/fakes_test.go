package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"rentmate/internal/domain/entity"
	"rentmate/pkg/errors"
)

// In-memory repository fakes. They mirror the store-level behavior the
// Firestore adapters provide, including the atomic favorite insert and the
// contract revision check.

type fakeUserRepo struct {
	users map[string]map[string]*entity.User // role -> id -> user
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: map[string]map[string]*entity.User{
			entity.RoleLandlord: {},
			entity.RoleTenant:   {},
		},
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, role string, user *entity.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	r.users[role][user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, role, id string) (*entity.User, error) {
	user, ok := r.users[role][id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, role, phone string) (*entity.User, error) {
	for _, user := range r.users[role] {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, role, id string, fields map[string]interface{}) error {
	user, ok := r.users[role][id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if bio, ok := fields["bio"].(string); ok {
		user.Bio = bio
	}
	if avatar, ok := fields["avatar"].(string); ok {
		user.Avatar = avatar
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, role, id, newPassword string) error {
	user, ok := r.users[role][id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Password = newPassword
	return nil
}

type fakeRentalRepo struct {
	rentals   map[string]*entity.Rental
	amenities []string
	seq       int
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: map[string]*entity.Rental{}}
}

func (r *fakeRentalRepo) Create(ctx context.Context, rental *entity.Rental) error {
	r.seq++
	rental.ID = fmt.Sprintf("rental-%d", r.seq)
	rental.CreatedAt = time.Now()
	r.rentals[rental.ID] = rental
	return nil
}

func (r *fakeRentalRepo) GetByID(ctx context.Context, id string) (*entity.Rental, error) {
	rental, ok := r.rentals[id]
	if !ok {
		return nil, errors.NotFound("Rental", nil)
	}
	return rental, nil
}

func (r *fakeRentalRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	rental, ok := r.rentals[id]
	if !ok {
		return errors.NotFound("Rental", nil)
	}
	if title, ok := fields["title"].(string); ok {
		rental.Title = title
	}
	if published, ok := fields["isPublished"].(bool); ok {
		rental.IsPublished = published
	}
	if lat, ok := fields["lat"].(float64); ok {
		rental.Lat = lat
	}
	if lng, ok := fields["lng"].(float64); ok {
		rental.Lng = lng
	}
	return nil
}

func (r *fakeRentalRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.rentals[id]; !ok {
		return errors.NotFound("Rental", nil)
	}
	delete(r.rentals, id)
	return nil
}

func (r *fakeRentalRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Rental, error) {
	var result []*entity.Rental
	for _, rental := range r.rentals {
		if rental.LandlordID == landlordID {
			result = append(result, rental)
		}
	}
	return result, nil
}

func (r *fakeRentalRepo) ListPublished(ctx context.Context) ([]*entity.Rental, error) {
	var result []*entity.Rental
	for _, rental := range r.rentals {
		if rental.IsPublished {
			result = append(result, rental)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeRentalRepo) ListAmenities(ctx context.Context) ([]string, error) {
	return r.amenities, nil
}

type fakeAppointmentRepo struct {
	appointments map[string]*entity.Appointment
	seq          int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[string]*entity.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.seq++
	appointment.ID = fmt.Sprintf("appt-%d", r.seq)
	appointment.CreatedAt = time.Now()
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, errors.NotFound("Appointment", nil)
	}
	return appointment, nil
}

func (r *fakeAppointmentRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Appointment, error) {
	var result []*entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.LandlordID == landlordID {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Appointment, error) {
	var result []*entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.TenantID == tenantID {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) ListByRental(ctx context.Context, rentalID string) ([]*entity.Appointment, error) {
	var result []*entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.RentalID == rentalID {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) AppendMessage(ctx context.Context, id string, entry entity.NegotiationEntry) error {
	appointment, ok := r.appointments[id]
	if !ok {
		return errors.NotFound("Appointment", nil)
	}
	appointment.History = append(appointment.History, entry)
	appointment.Status = entity.AppointmentNegotiating
	return nil
}

func (r *fakeAppointmentRepo) SetLandlordMessage(ctx context.Context, id, message string) error {
	appointment, ok := r.appointments[id]
	if !ok {
		return errors.NotFound("Appointment", nil)
	}
	appointment.LandlordMessage = message
	appointment.Status = entity.AppointmentNegotiating
	return nil
}

func (r *fakeAppointmentRepo) SetStatus(ctx context.Context, id string, status entity.AppointmentStatus) error {
	appointment, ok := r.appointments[id]
	if !ok {
		return errors.NotFound("Appointment", nil)
	}
	appointment.Status = status
	return nil
}

func (r *fakeAppointmentRepo) Finalize(ctx context.Context, id string, finalDate, finalTime string) error {
	appointment, ok := r.appointments[id]
	if !ok {
		return errors.NotFound("Appointment", nil)
	}
	appointment.Status = entity.AppointmentConfirmed
	appointment.Date = finalDate
	appointment.Time = finalTime
	appointment.IsFinalized = true
	return nil
}

type fakeContractRepo struct {
	contracts map[string]*entity.Contract
	seq       int
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: map[string]*entity.Contract{}}
}

func (r *fakeContractRepo) Create(ctx context.Context, contract *entity.Contract) error {
	r.seq++
	contract.ID = fmt.Sprintf("contract-%d", r.seq)
	contract.CreatedAt = time.Now()
	snapshot := *contract
	r.contracts[contract.ID] = &snapshot
	return nil
}

func (r *fakeContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	contract, ok := r.contracts[id]
	if !ok {
		return nil, errors.NotFound("Contract", nil)
	}
	snapshot := *contract
	return &snapshot, nil
}

func (r *fakeContractRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Contract, error) {
	var result []*entity.Contract
	for _, contract := range r.contracts {
		if contract.LandlordID == landlordID {
			result = append(result, contract)
		}
	}
	return result, nil
}

func (r *fakeContractRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Contract, error) {
	var result []*entity.Contract
	for _, contract := range r.contracts {
		if contract.TenantID == tenantID {
			result = append(result, contract)
		}
	}
	return result, nil
}

func (r *fakeContractRepo) SetPDF(ctx context.Context, id, url, storagePath string) error {
	contract, ok := r.contracts[id]
	if !ok {
		return errors.NotFound("Contract", nil)
	}
	contract.PDFURL = url
	contract.StoragePath = storagePath
	contract.PDFRevision++
	return nil
}

func (r *fakeContractRepo) ApplySignature(ctx context.Context, id, role, url, storagePath string, expectedRevision int64, signedAt time.Time) error {
	contract, ok := r.contracts[id]
	if !ok {
		return errors.NotFound("Contract", nil)
	}
	if contract.PDFRevision != expectedRevision {
		return errors.Conflict("Contract PDF changed while signing, please sign again")
	}

	status, ok := entity.SignedStatusForRole(role)
	if !ok {
		return errors.BadRequest("Unknown signer role", nil)
	}

	contract.PDFURL = url
	contract.StoragePath = storagePath
	contract.Status = status
	contract.PDFRevision++
	if role == entity.RoleLandlord {
		contract.LandlordSignedAt = &signedAt
	} else {
		contract.TenantSignedAt = &signedAt
	}
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[string]*entity.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[string]*entity.Favorite{}}
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, uid, rentalID string) (*entity.Favorite, bool, error) {
	id := entity.FavoriteID(uid, rentalID)
	if existing, ok := r.favorites[id]; ok {
		return existing, false, nil
	}
	fav := &entity.Favorite{
		ID:        id,
		UID:       uid,
		RentalID:  rentalID,
		CreatedAt: time.Now(),
	}
	r.favorites[id] = fav
	return fav, true, nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, favDocID string) error {
	if _, ok := r.favorites[favDocID]; !ok {
		return errors.NotFound("Favorite", nil)
	}
	delete(r.favorites, favDocID)
	return nil
}

func (r *fakeFavoriteRepo) Get(ctx context.Context, uid, rentalID string) (*entity.Favorite, error) {
	fav, ok := r.favorites[entity.FavoriteID(uid, rentalID)]
	if !ok {
		return nil, errors.NotFound("Favorite", nil)
	}
	return fav, nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, uid string) ([]*entity.Favorite, error) {
	var result []*entity.Favorite
	for _, fav := range r.favorites {
		if fav.UID == uid {
			result = append(result, fav)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeFavoriteRepo) CountByRental(ctx context.Context, rentalID string) (int64, error) {
	var count int64
	for _, fav := range r.favorites {
		if fav.RentalID == rentalID {
			count++
		}
	}
	return count, nil
}

type fakeTenantRecordRepo struct {
	records map[string]*entity.TenantRecord
	seq     int
}

func newFakeTenantRecordRepo() *fakeTenantRecordRepo {
	return &fakeTenantRecordRepo{records: map[string]*entity.TenantRecord{}}
}

func (r *fakeTenantRecordRepo) Create(ctx context.Context, record *entity.TenantRecord) error {
	r.seq++
	record.ID = fmt.Sprintf("record-%d", r.seq)
	record.CreatedAt = time.Now()
	r.records[record.ID] = record
	return nil
}

func (r *fakeTenantRecordRepo) GetByID(ctx context.Context, id string) (*entity.TenantRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, errors.NotFound("Tenant record", nil)
	}
	return record, nil
}

func (r *fakeTenantRecordRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.TenantRecord, error) {
	var result []*entity.TenantRecord
	for _, record := range r.records {
		if record.LandlordID == landlordID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeTenantRecordRepo) ListActiveByUID(ctx context.Context, uid string) ([]*entity.TenantRecord, error) {
	var result []*entity.TenantRecord
	for _, record := range r.records {
		if record.UID == uid && record.Status == entity.TenantRecordActive {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeTenantRecordRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	record, ok := r.records[id]
	if !ok {
		return errors.NotFound("Tenant record", nil)
	}
	if name, ok := fields["name"].(string); ok {
		record.Name = name
	}
	if status, ok := fields["status"].(string); ok {
		record.Status = status
	}
	return nil
}

func (r *fakeTenantRecordRepo) SetRecords(ctx context.Context, id string, records map[string]entity.BillingRecord) error {
	record, ok := r.records[id]
	if !ok {
		return errors.NotFound("Tenant record", nil)
	}
	record.Records = records
	return nil
}

type fakeChatRepo struct {
	messages map[string][]*entity.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{messages: map[string][]*entity.ChatMessage{}}
}

func (r *fakeChatRepo) AppendMessage(ctx context.Context, conversationID string, participants []string, message *entity.ChatMessage) error {
	message.CreatedAt = time.Now()
	r.messages[conversationID] = append(r.messages[conversationID], message)
	return nil
}

func (r *fakeChatRepo) ListMessages(ctx context.Context, conversationID string) ([]*entity.ChatMessage, error) {
	return r.messages[conversationID], nil
}

// Infrastructure fakes.

type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) UploadBytes(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	s.objects[objectName] = data
	return "https://signed.example.com/" + objectName, nil
}

func (s *fakeStorage) UploadPublicImage(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	s.objects[objectName] = data
	return "https://public.example.com/" + objectName, nil
}

func (s *fakeStorage) Download(ctx context.Context, objectName string) ([]byte, error) {
	data, ok := s.objects[objectName]
	if !ok {
		return nil, errors.NotFound("Object", nil)
	}
	return data, nil
}

type fakeGeocoder struct {
	lat, lng float64
	err      error
}

func (g *fakeGeocoder) Lookup(ctx context.Context, address string) (float64, float64, error) {
	if g.err != nil {
		return 0, 0, g.err
	}
	return g.lat, g.lng, nil
}

type fakeRenderer struct {
	renderErr error
	stampErr  error
}

func (r *fakeRenderer) Render(contract *entity.Contract) ([]byte, error) {
	if r.renderErr != nil {
		return nil, r.renderErr
	}
	return []byte("%PDF rendered " + contract.LandlordName), nil
}

func (r *fakeRenderer) Stamp(pdf []byte, signaturePNG []byte, role string) ([]byte, error) {
	if r.stampErr != nil {
		return nil, r.stampErr
	}
	return append(append([]byte{}, pdf...), []byte(" stamped:"+role)...), nil
}
