package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/pausegov/errors"
)

// Counter is a minimal model used by the tests.
type Counter struct {
	Count int64    `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	Notes []string `protobuf:"bytes,2,rep,name=notes,proto3" json:"notes,omitempty"`
}

func (m *Counter) Reset()         { *m = Counter{} }
func (m *Counter) String() string { return proto.CompactTextString(m) }
func (*Counter) ProtoMessage()    {}

func (m *Counter) Validate() error {
	if m.Count < 0 {
		return errors.Field("Count", errors.ErrModel, "must not be negative")
	}
	return nil
}

// Other is a model of a different type.
type Other struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *Other) Reset()         { *m = Other{} }
func (m *Other) String() string { return proto.CompactTextString(m) }
func (*Other) ProtoMessage()    {}
func (*Other) Validate() error  { return nil }
