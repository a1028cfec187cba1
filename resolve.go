package main

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyMembers is wrapped when an enum has more members than any
	// supported storage type can hold as distinct flags.
	ErrTooManyMembers = errors.New("too many members")
	// ErrDuplicateMember is wrapped when two members end up with the same name.
	ErrDuplicateMember = errors.New("duplicate member")
	// ErrEmptyMember is wrapped when a member name is empty after rewriting.
	ErrEmptyMember = errors.New("empty member name")
)

const (
	// maxStorageBytes is the widest storage type that can be inferred.
	maxStorageBytes = 8
	// maxMembers is the most members an enum can hold: the zero member plus
	// one member per bit of a 64-bit value.
	maxMembers = 64 + 1
)

// Member is an enum member with its assigned value.
type Member struct {
	Name  string
	Value uint64
}

// ResolvedEnum is an enum with a concrete storage type and member values,
// ready to be rendered.
type ResolvedEnum struct {
	Name           string
	BitfieldExempt bool
	UnderlyingType string
	Members        []Member
}

// InferUnderlyingType returns the narrowest unsigned integer type that can
// hold one bit per member. Widths are rounded up to a power of two.
func InferUnderlyingType(memberCount int) (string, error) {
	requiredBytes := (memberCount + 7) / 8
	if requiredBytes > maxStorageBytes {
		return "", fmt.Errorf("%w: %d members need %d bytes of storage, at most %d are supported",
			ErrTooManyMembers, memberCount, requiredBytes, maxStorageBytes)
	}
	width := 1
	for width < requiredBytes {
		width <<= 1
	}
	return fmt.Sprintf("uint%d_t", width*8), nil
}

// MemberValue returns the value assigned to the member at index. The first
// member is the empty set, every following member gets the next single bit.
func MemberValue(index int) uint64 {
	if index == 0 {
		return 0
	}
	return 1 << (index - 1)
}

// Resolve determines the storage type and member values of decl. Member
// names are passed through conv first, if it is not nil.
func Resolve(decl EnumDecl, conv NameConv) (ResolvedEnum, error) {
	underlying := decl.UnderlyingType
	if underlying == "" {
		inferred, err := InferUnderlyingType(len(decl.Members))
		if err != nil {
			return ResolvedEnum{}, fmt.Errorf("inferring type of enum %s: %w", decl.Name, err)
		}
		underlying = inferred
	} else if len(decl.Members) > maxMembers {
		return ResolvedEnum{}, fmt.Errorf("enum %s: %w: %d members exceed the %d that fit in 64 bits",
			decl.Name, ErrTooManyMembers, len(decl.Members), maxMembers)
	}
	members := make([]Member, len(decl.Members))
	seen := make(map[string]int, len(decl.Members))
	for i, name := range decl.Members {
		if conv != nil {
			name = conv(name)
		}
		if name == "" {
			return ResolvedEnum{}, fmt.Errorf("enum %s: %w at position %d (from '%s')",
				decl.Name, ErrEmptyMember, i+1, decl.Members[i])
		}
		if first, ok := seen[name]; ok {
			return ResolvedEnum{}, fmt.Errorf("enum %s: %w %s at positions %d and %d",
				decl.Name, ErrDuplicateMember, name, first+1, i+1)
		}
		seen[name] = i
		members[i] = Member{
			Name:  name,
			Value: MemberValue(i),
		}
	}
	return ResolvedEnum{
		Name:           decl.Name,
		BitfieldExempt: decl.BitfieldExempt,
		UnderlyingType: underlying,
		Members:        members,
	}, nil
}
