package registry_service_api

import (
	"errors"
	"fmt"
	"math"

	"github.com/Domenick1991/airportregistry/internal/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func toStatus(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, repository.ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func invalidArgument(format string, args ...any) error {
	return status.Error(codes.InvalidArgument, fmt.Sprintf(format, args...))
}

// Absent fields read as zero values; present fields of the wrong kind fail.

func stringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return "", nil
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", invalidArgument("%s must be a string", name)
	}
	return str.StringValue, nil
}

func numberField(s *structpb.Struct, name string) (float64, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, invalidArgument("%s must be a number", name)
	}
	return n.NumberValue, nil
}

func intField(s *structpb.Struct, name string) (int64, error) {
	n, err := numberField(s, name)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
		return 0, invalidArgument("%s must be an integer", name)
	}
	return int64(n), nil
}
