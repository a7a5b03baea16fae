package registry_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "airportregistry.v1.RegistryService"

// RegistryServiceServer is the gRPC surface of the registry. Records and
// multi-argument calls travel as structpb.Struct, scalars as wrapperspb values.
type RegistryServiceServer interface {
	AddAirport(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	LargestAirport(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	AddFlight(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	AddPassenger(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	ShortestDuration(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error)
	PeopleCount(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	CalculateFare(context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
	BookTicket(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	CancelTicket(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	BookingCount(context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
	DepartureAirport(context.Context, *wrapperspb.Int64Value) (*wrapperspb.StringValue, error)
	CalculateRevenue(context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
}

var RegistryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RegistryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("AddAirport", RegistryServiceServer.AddAirport),
		unary("LargestAirport", RegistryServiceServer.LargestAirport),
		unary("AddFlight", RegistryServiceServer.AddFlight),
		unary("AddPassenger", RegistryServiceServer.AddPassenger),
		unary("ShortestDuration", RegistryServiceServer.ShortestDuration),
		unary("PeopleCount", RegistryServiceServer.PeopleCount),
		unary("CalculateFare", RegistryServiceServer.CalculateFare),
		unary("BookTicket", RegistryServiceServer.BookTicket),
		unary("CancelTicket", RegistryServiceServer.CancelTicket),
		unary("BookingCount", RegistryServiceServer.BookingCount),
		unary("DepartureAirport", RegistryServiceServer.DepartureAirport),
		unary("CalculateRevenue", RegistryServiceServer.CalculateRevenue),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airportregistry/v1/registry.proto",
}

func RegisterRegistryServiceServer(s grpc.ServiceRegistrar, srv RegistryServiceServer) {
	s.RegisterService(&RegistryService_ServiceDesc, srv)
}

// FullMethod returns the invoke path of a RegistryService method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](method string, call func(RegistryServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			impl := srv.(RegistryServiceServer)
			if interceptor == nil {
				return call(impl, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(impl, ctx, req.(PReq))
			})
		},
	}
}
