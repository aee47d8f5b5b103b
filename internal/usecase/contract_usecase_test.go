package usecase

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentmate/internal/domain/entity"
	"rentmate/pkg/errors"
)

func signaturePayload() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("signature-png"))
}

func newContractFixture(t *testing.T) (*ContractUseCase, *fakeContractRepo, *fakeUserRepo) {
	t.Helper()

	contractRepo := newFakeContractRepo()
	userRepo := newFakeUserRepo()
	uc := NewContractUseCase(contractRepo, userRepo, newFakeStorage(), &fakeRenderer{})

	return uc, contractRepo, userRepo
}

func createContract(t *testing.T, uc *ContractUseCase) *entity.Contract {
	t.Helper()

	contract, err := uc.Create(context.Background(), CreateContractInput{
		LandlordID:   "landlord-1",
		LandlordName: "王大明",
		TenantID:     "tenant-1",
		TenantName:   "李小華",
		Price:        15000,
		PeriodStart:  "2026-09-01",
		PeriodEnd:    "2027-08-31",
	})
	require.NoError(t, err)

	return contract
}

func TestCreateContractRendersAndStoresPDF(t *testing.T) {
	uc, _, _ := newContractFixture(t)

	contract := createContract(t, uc)

	assert.Equal(t, entity.ContractCreated, contract.Status)
	assert.NotEmpty(t, contract.PDFURL)
	assert.NotEmpty(t, contract.StoragePath)
	assert.Equal(t, int64(0), contract.PDFRevision)
	assert.Nil(t, contract.LandlordSignedAt)
	assert.Nil(t, contract.TenantSignedAt)
}

func TestCreateContractResolvesTenantByPhone(t *testing.T) {
	uc, _, userRepo := newContractFixture(t)
	ctx := context.Background()

	tenant := &entity.User{Name: "李小華", Phone: "0912345678", Role: entity.RoleTenant}
	require.NoError(t, userRepo.Create(ctx, entity.RoleTenant, tenant))

	contract, err := uc.Create(ctx, CreateContractInput{
		LandlordID:   "landlord-1",
		LandlordName: "王大明",
		TenantPhone:  "0912345678",
		PeriodStart:  "2026-09-01",
		PeriodEnd:    "2027-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, tenant.ID, contract.TenantID)
	assert.Equal(t, "李小華", contract.TenantName)
}

func TestCreateContractWithoutLeasePeriodStillRenders(t *testing.T) {
	uc, _, _ := newContractFixture(t)

	contract, err := uc.Create(context.Background(), CreateContractInput{
		LandlordID:   "landlord-1",
		LandlordName: "王大明",
	})
	require.NoError(t, err)

	// Absent dates render as blank form fields instead of rejecting.
	assert.Equal(t, entity.ContractCreated, contract.Status)
	assert.Empty(t, contract.PeriodStart)
	assert.Empty(t, contract.PeriodEnd)
	assert.NotEmpty(t, contract.PDFURL)
}

func TestCreateContractWithUnknownPhoneLeavesTenantEmpty(t *testing.T) {
	uc, _, _ := newContractFixture(t)

	contract, err := uc.Create(context.Background(), CreateContractInput{
		LandlordID:   "landlord-1",
		LandlordName: "王大明",
		TenantPhone:  "0900000000",
		PeriodStart:  "2026-09-01",
		PeriodEnd:    "2027-08-31",
	})
	require.NoError(t, err)
	assert.Empty(t, contract.TenantID)
}

func TestSignBothPartiesKeepsBothTimestamps(t *testing.T) {
	uc, _, _ := newContractFixture(t)
	ctx := context.Background()

	contract := createContract(t, uc)

	afterLandlord, err := uc.Sign(ctx, contract.ID, entity.RoleLandlord, signaturePayload())
	require.NoError(t, err)
	assert.Equal(t, entity.ContractLandlordSigned, afterLandlord.Status)
	assert.NotNil(t, afterLandlord.LandlordSignedAt)

	afterTenant, err := uc.Sign(ctx, contract.ID, entity.RoleTenant, signaturePayload())
	require.NoError(t, err)

	// The later signer's label wins but the earlier timestamp survives.
	assert.Equal(t, entity.ContractTenantSigned, afterTenant.Status)
	assert.NotNil(t, afterTenant.LandlordSignedAt)
	assert.NotNil(t, afterTenant.TenantSignedAt)
	assert.True(t, afterTenant.FullySigned())
}

func TestSignTwiceBySamePartyRejected(t *testing.T) {
	uc, _, _ := newContractFixture(t)
	ctx := context.Background()

	contract := createContract(t, uc)

	_, err := uc.Sign(ctx, contract.ID, entity.RoleLandlord, signaturePayload())
	require.NoError(t, err)

	_, err = uc.Sign(ctx, contract.ID, entity.RoleLandlord, signaturePayload())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSignDetectsConcurrentPDFSwap(t *testing.T) {
	uc, contractRepo, _ := newContractFixture(t)
	ctx := context.Background()

	contract := createContract(t, uc)

	// Simulate the other party finishing a stamp cycle after our download.
	stale := contract.PDFRevision
	require.NoError(t, contractRepo.SetPDF(ctx, contract.ID, "https://signed.example.com/other", contract.StoragePath))

	err := contractRepo.ApplySignature(ctx, contract.ID, entity.RoleLandlord, "url", "path", stale, contract.CreatedAt)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestSignWithoutStoredPDFFails(t *testing.T) {
	uc, contractRepo, _ := newContractFixture(t)
	ctx := context.Background()

	contract := &entity.Contract{LandlordID: "landlord-1", Status: entity.ContractCreated}
	require.NoError(t, contractRepo.Create(ctx, contract))

	_, err := uc.Sign(ctx, contract.ID, entity.RoleLandlord, signaturePayload())
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdatePDFBumpsRevision(t *testing.T) {
	uc, _, _ := newContractFixture(t)
	ctx := context.Background()

	contract := createContract(t, uc)

	payload := base64.StdEncoding.EncodeToString([]byte("%PDF replacement"))
	updated, err := uc.UpdatePDF(ctx, contract.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, contract.PDFRevision+1, updated.PDFRevision)
	assert.NotEqual(t, contract.StoragePath, updated.StoragePath)
}
