package cli

import (
	"strconv"

	"github.com/pkg/errors"
)

// bareFlag is the NoOptDefVal of switch flags. pflag passes it to Set only
// when the flag is named without "=value".
const bareFlag = "\x00"

// switchValue is a pflag.Value that is turned on by naming the flag and
// rejects any explicit value, so "--xs=false" is a syntax error rather than
// a way to unset another alias.
type switchValue struct {
	on *bool
}

func (s switchValue) Set(value string) error {
	if value != bareFlag {
		return errors.Errorf("ignored explicit argument '%s'", value)
	}
	*s.on = true
	return nil
}

func (s switchValue) String() string {
	if s.on == nil {
		return "false"
	}
	return strconv.FormatBool(*s.on)
}

func (s switchValue) Type() string {
	return "switch"
}
