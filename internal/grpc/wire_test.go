package grpc

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestServiceDescsMatchProto(t *testing.T) {
	raw, err := os.ReadFile("../../api/protos/mogakco.proto")
	require.NoError(t, err)
	proto := string(raw)

	for _, desc := range []grpc.ServiceDesc{AuthServiceDesc, DocumentsServiceDesc, ChatServiceDesc} {
		t.Run(desc.ServiceName, func(t *testing.T) {
			assert.Equal(t, "mogakco.proto", desc.Metadata)

			name := strings.TrimPrefix(desc.ServiceName, "mogakco.")
			start := strings.Index(proto, "service "+name+" {")
			require.NotEqual(t, -1, start, "service %s not declared", name)
			end := strings.Index(proto[start:], "\n}")
			block := proto[start : start+end]

			assert.Equal(t, len(desc.Methods), strings.Count(block, "rpc "))
			for _, m := range desc.Methods {
				assert.Contains(t, block, "rpc "+m.MethodName+"(google.protobuf.Struct) returns (google.protobuf.Struct);")
			}
		})
	}
}

func TestFetchMessagesReq_CursorRoundTrip(t *testing.T) {
	req := FetchMessagesReq{
		ChatRoomID: "room",
		Before:     time.Date(2024, 5, 1, 10, 0, 0, 123000, time.UTC),
		BeforeID:   "m9",
		Limit:      20,
	}

	s, err := encode(req)
	require.NoError(t, err)
	assert.Equal(t, "m9", s.Fields["beforeID"].GetStringValue())

	var got FetchMessagesReq
	require.NoError(t, decode(s, &got))
	assert.True(t, req.Before.Equal(got.Before))
	assert.Equal(t, req.BeforeID, got.BeforeID)
	assert.Equal(t, req.Limit, got.Limit)
}
