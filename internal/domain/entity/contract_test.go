package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContractTransitions(t *testing.T) {
	cases := []struct {
		from    ContractStatus
		to      ContractStatus
		allowed bool
	}{
		{ContractCreated, ContractLandlordSigned, true},
		{ContractCreated, ContractTenantSigned, true},
		{ContractLandlordSigned, ContractTenantSigned, true},
		{ContractTenantSigned, ContractLandlordSigned, true},
		// Re-signing by the same party is rejected.
		{ContractLandlordSigned, ContractLandlordSigned, false},
		{ContractTenantSigned, ContractTenantSigned, false},
		{ContractLandlordSigned, ContractCreated, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestSignedStatusForRole(t *testing.T) {
	status, ok := SignedStatusForRole(RoleLandlord)
	assert.True(t, ok)
	assert.Equal(t, ContractLandlordSigned, status)

	status, ok = SignedStatusForRole(RoleTenant)
	assert.True(t, ok)
	assert.Equal(t, ContractTenantSigned, status)

	_, ok = SignedStatusForRole("notary")
	assert.False(t, ok)
}

func TestFullySignedIgnoresStatusLabel(t *testing.T) {
	now := time.Now()

	contract := &Contract{Status: ContractTenantSigned, TenantSignedAt: &now}
	assert.False(t, contract.FullySigned())

	contract.LandlordSignedAt = &now
	assert.True(t, contract.FullySigned())
}
