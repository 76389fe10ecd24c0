package group

import (
	"fmt"

	"github.com/ahmadsaad58/todo/errors"
)

func errGroupExists(name string) error {
	return errors.New(fmt.Sprintf("group %s already exists", name), errors.Conflict())
}

func errGroupNotFound(name string) error {
	return errors.New(fmt.Sprintf("no group with name %s", name), errors.NotFound())
}

func errMemberExists(name string) error {
	return errors.New(fmt.Sprintf("member %s already exists", name), errors.Conflict())
}

func errMemberNotFound(name string) error {
	return errors.New(fmt.Sprintf("no member with name %s", name), errors.NotFound())
}
