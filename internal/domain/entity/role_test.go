package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleSeller.IsValid())
	assert.True(t, RoleAdmin.IsValid())

	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
}
