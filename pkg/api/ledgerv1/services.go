package ledgerv1

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	StockService_AdjustStock_FullMethodName    = "/omnipos.ledger.v1.StockService/AdjustStock"
	StockService_ReserveStock_FullMethodName   = "/omnipos.ledger.v1.StockService/ReserveStock"
	StockService_ReleaseStock_FullMethodName   = "/omnipos.ledger.v1.StockService/ReleaseStock"
	StockService_ConfigureStock_FullMethodName = "/omnipos.ledger.v1.StockService/ConfigureStock"
	StockService_GetStock_FullMethodName       = "/omnipos.ledger.v1.StockService/GetStock"
	StockService_ListLowStock_FullMethodName   = "/omnipos.ledger.v1.StockService/ListLowStock"

	MovementService_ListMovements_FullMethodName = "/omnipos.ledger.v1.MovementService/ListMovements"

	AttributionService_CreateAttribution_FullMethodName       = "/omnipos.ledger.v1.AttributionService/CreateAttribution"
	AttributionService_GetAttribution_FullMethodName          = "/omnipos.ledger.v1.AttributionService/GetAttribution"
	AttributionService_ListAttributions_FullMethodName        = "/omnipos.ledger.v1.AttributionService/ListAttributions"
	AttributionService_UpdateAttributionStatus_FullMethodName = "/omnipos.ledger.v1.AttributionService/UpdateAttributionStatus"
	AttributionService_DeleteAttribution_FullMethodName       = "/omnipos.ledger.v1.AttributionService/DeleteAttribution"

	RepairTicketService_CreateRepairTicket_FullMethodName       = "/omnipos.ledger.v1.RepairTicketService/CreateRepairTicket"
	RepairTicketService_GetRepairTicket_FullMethodName          = "/omnipos.ledger.v1.RepairTicketService/GetRepairTicket"
	RepairTicketService_ListRepairTickets_FullMethodName        = "/omnipos.ledger.v1.RepairTicketService/ListRepairTickets"
	RepairTicketService_UpdateRepairTicketStatus_FullMethodName = "/omnipos.ledger.v1.RepairTicketService/UpdateRepairTicketStatus"

	ReportService_GetDashboard_FullMethodName = "/omnipos.ledger.v1.ReportService/GetDashboard"
)

// StockService

type StockServiceServer interface {
	AdjustStock(context.Context, *AdjustStockRequest) (*StockEntry, error)
	ReserveStock(context.Context, *ReserveStockRequest) (*StockEntry, error)
	ReleaseStock(context.Context, *ReleaseStockRequest) (*StockEntry, error)
	ConfigureStock(context.Context, *ConfigureStockRequest) (*StockEntry, error)
	GetStock(context.Context, *GetStockRequest) (*StockEntry, error)
	ListLowStock(context.Context, *ListLowStockRequest) (*ListLowStockResponse, error)
}

type UnimplementedStockServiceServer struct{}

func (UnimplementedStockServiceServer) AdjustStock(context.Context, *AdjustStockRequest) (*StockEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method AdjustStock not implemented")
}
func (UnimplementedStockServiceServer) ReserveStock(context.Context, *ReserveStockRequest) (*StockEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method ReserveStock not implemented")
}
func (UnimplementedStockServiceServer) ReleaseStock(context.Context, *ReleaseStockRequest) (*StockEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method ReleaseStock not implemented")
}
func (UnimplementedStockServiceServer) ConfigureStock(context.Context, *ConfigureStockRequest) (*StockEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfigureStock not implemented")
}
func (UnimplementedStockServiceServer) GetStock(context.Context, *GetStockRequest) (*StockEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStock not implemented")
}
func (UnimplementedStockServiceServer) ListLowStock(context.Context, *ListLowStockRequest) (*ListLowStockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLowStock not implemented")
}

var StockService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.ledger.v1.StockService",
	HandlerType: (*StockServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AdjustStock",
			Handler: rpc.Unary(StockService_AdjustStock_FullMethodName, func(srv interface{}, ctx context.Context, req *AdjustStockRequest) (*StockEntry, error) {
				return srv.(StockServiceServer).AdjustStock(ctx, req)
			}),
		},
		{
			MethodName: "ReserveStock",
			Handler: rpc.Unary(StockService_ReserveStock_FullMethodName, func(srv interface{}, ctx context.Context, req *ReserveStockRequest) (*StockEntry, error) {
				return srv.(StockServiceServer).ReserveStock(ctx, req)
			}),
		},
		{
			MethodName: "ReleaseStock",
			Handler: rpc.Unary(StockService_ReleaseStock_FullMethodName, func(srv interface{}, ctx context.Context, req *ReleaseStockRequest) (*StockEntry, error) {
				return srv.(StockServiceServer).ReleaseStock(ctx, req)
			}),
		},
		{
			MethodName: "ConfigureStock",
			Handler: rpc.Unary(StockService_ConfigureStock_FullMethodName, func(srv interface{}, ctx context.Context, req *ConfigureStockRequest) (*StockEntry, error) {
				return srv.(StockServiceServer).ConfigureStock(ctx, req)
			}),
		},
		{
			MethodName: "GetStock",
			Handler: rpc.Unary(StockService_GetStock_FullMethodName, func(srv interface{}, ctx context.Context, req *GetStockRequest) (*StockEntry, error) {
				return srv.(StockServiceServer).GetStock(ctx, req)
			}),
		},
		{
			MethodName: "ListLowStock",
			Handler: rpc.Unary(StockService_ListLowStock_FullMethodName, func(srv interface{}, ctx context.Context, req *ListLowStockRequest) (*ListLowStockResponse, error) {
				return srv.(StockServiceServer).ListLowStock(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterStockServiceServer(s grpc.ServiceRegistrar, srv StockServiceServer) {
	s.RegisterService(&StockService_ServiceDesc, srv)
}

type StockServiceClient interface {
	AdjustStock(ctx context.Context, in *AdjustStockRequest, opts ...grpc.CallOption) (*StockEntry, error)
	ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*StockEntry, error)
	ReleaseStock(ctx context.Context, in *ReleaseStockRequest, opts ...grpc.CallOption) (*StockEntry, error)
	ConfigureStock(ctx context.Context, in *ConfigureStockRequest, opts ...grpc.CallOption) (*StockEntry, error)
	GetStock(ctx context.Context, in *GetStockRequest, opts ...grpc.CallOption) (*StockEntry, error)
	ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListLowStockResponse, error)
}

type stockServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStockServiceClient(cc grpc.ClientConnInterface) StockServiceClient {
	return &stockServiceClient{cc}
}

func (c *stockServiceClient) AdjustStock(ctx context.Context, in *AdjustStockRequest, opts ...grpc.CallOption) (*StockEntry, error) {
	return rpc.Invoke[StockEntry](ctx, c.cc, StockService_AdjustStock_FullMethodName, in, opts...)
}

func (c *stockServiceClient) ReserveStock(ctx context.Context, in *ReserveStockRequest, opts ...grpc.CallOption) (*StockEntry, error) {
	return rpc.Invoke[StockEntry](ctx, c.cc, StockService_ReserveStock_FullMethodName, in, opts...)
}

func (c *stockServiceClient) ReleaseStock(ctx context.Context, in *ReleaseStockRequest, opts ...grpc.CallOption) (*StockEntry, error) {
	return rpc.Invoke[StockEntry](ctx, c.cc, StockService_ReleaseStock_FullMethodName, in, opts...)
}

func (c *stockServiceClient) ConfigureStock(ctx context.Context, in *ConfigureStockRequest, opts ...grpc.CallOption) (*StockEntry, error) {
	return rpc.Invoke[StockEntry](ctx, c.cc, StockService_ConfigureStock_FullMethodName, in, opts...)
}

func (c *stockServiceClient) GetStock(ctx context.Context, in *GetStockRequest, opts ...grpc.CallOption) (*StockEntry, error) {
	return rpc.Invoke[StockEntry](ctx, c.cc, StockService_GetStock_FullMethodName, in, opts...)
}

func (c *stockServiceClient) ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListLowStockResponse, error) {
	return rpc.Invoke[ListLowStockResponse](ctx, c.cc, StockService_ListLowStock_FullMethodName, in, opts...)
}

// MovementService

type MovementServiceServer interface {
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
}

type UnimplementedMovementServiceServer struct{}

func (UnimplementedMovementServiceServer) ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMovements not implemented")
}

var MovementService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.ledger.v1.MovementService",
	HandlerType: (*MovementServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMovements",
			Handler: rpc.Unary(MovementService_ListMovements_FullMethodName, func(srv interface{}, ctx context.Context, req *ListMovementsRequest) (*ListMovementsResponse, error) {
				return srv.(MovementServiceServer).ListMovements(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterMovementServiceServer(s grpc.ServiceRegistrar, srv MovementServiceServer) {
	s.RegisterService(&MovementService_ServiceDesc, srv)
}

type MovementServiceClient interface {
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
}

type movementServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMovementServiceClient(cc grpc.ClientConnInterface) MovementServiceClient {
	return &movementServiceClient{cc}
}

func (c *movementServiceClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	return rpc.Invoke[ListMovementsResponse](ctx, c.cc, MovementService_ListMovements_FullMethodName, in, opts...)
}

// AttributionService

type AttributionServiceServer interface {
	CreateAttribution(context.Context, *CreateAttributionRequest) (*AttributionEntry, error)
	GetAttribution(context.Context, *GetAttributionRequest) (*AttributionEntry, error)
	ListAttributions(context.Context, *ListAttributionsRequest) (*ListAttributionsResponse, error)
	UpdateAttributionStatus(context.Context, *UpdateAttributionStatusRequest) (*AttributionEntry, error)
	DeleteAttribution(context.Context, *DeleteAttributionRequest) (*Empty, error)
}

type UnimplementedAttributionServiceServer struct{}

func (UnimplementedAttributionServiceServer) CreateAttribution(context.Context, *CreateAttributionRequest) (*AttributionEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAttribution not implemented")
}
func (UnimplementedAttributionServiceServer) GetAttribution(context.Context, *GetAttributionRequest) (*AttributionEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAttribution not implemented")
}
func (UnimplementedAttributionServiceServer) ListAttributions(context.Context, *ListAttributionsRequest) (*ListAttributionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAttributions not implemented")
}
func (UnimplementedAttributionServiceServer) UpdateAttributionStatus(context.Context, *UpdateAttributionStatusRequest) (*AttributionEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateAttributionStatus not implemented")
}
func (UnimplementedAttributionServiceServer) DeleteAttribution(context.Context, *DeleteAttributionRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAttribution not implemented")
}

var AttributionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.ledger.v1.AttributionService",
	HandlerType: (*AttributionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateAttribution",
			Handler: rpc.Unary(AttributionService_CreateAttribution_FullMethodName, func(srv interface{}, ctx context.Context, req *CreateAttributionRequest) (*AttributionEntry, error) {
				return srv.(AttributionServiceServer).CreateAttribution(ctx, req)
			}),
		},
		{
			MethodName: "GetAttribution",
			Handler: rpc.Unary(AttributionService_GetAttribution_FullMethodName, func(srv interface{}, ctx context.Context, req *GetAttributionRequest) (*AttributionEntry, error) {
				return srv.(AttributionServiceServer).GetAttribution(ctx, req)
			}),
		},
		{
			MethodName: "ListAttributions",
			Handler: rpc.Unary(AttributionService_ListAttributions_FullMethodName, func(srv interface{}, ctx context.Context, req *ListAttributionsRequest) (*ListAttributionsResponse, error) {
				return srv.(AttributionServiceServer).ListAttributions(ctx, req)
			}),
		},
		{
			MethodName: "UpdateAttributionStatus",
			Handler: rpc.Unary(AttributionService_UpdateAttributionStatus_FullMethodName, func(srv interface{}, ctx context.Context, req *UpdateAttributionStatusRequest) (*AttributionEntry, error) {
				return srv.(AttributionServiceServer).UpdateAttributionStatus(ctx, req)
			}),
		},
		{
			MethodName: "DeleteAttribution",
			Handler: rpc.Unary(AttributionService_DeleteAttribution_FullMethodName, func(srv interface{}, ctx context.Context, req *DeleteAttributionRequest) (*Empty, error) {
				return srv.(AttributionServiceServer).DeleteAttribution(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAttributionServiceServer(s grpc.ServiceRegistrar, srv AttributionServiceServer) {
	s.RegisterService(&AttributionService_ServiceDesc, srv)
}

type AttributionServiceClient interface {
	CreateAttribution(ctx context.Context, in *CreateAttributionRequest, opts ...grpc.CallOption) (*AttributionEntry, error)
	GetAttribution(ctx context.Context, in *GetAttributionRequest, opts ...grpc.CallOption) (*AttributionEntry, error)
	ListAttributions(ctx context.Context, in *ListAttributionsRequest, opts ...grpc.CallOption) (*ListAttributionsResponse, error)
	UpdateAttributionStatus(ctx context.Context, in *UpdateAttributionStatusRequest, opts ...grpc.CallOption) (*AttributionEntry, error)
	DeleteAttribution(ctx context.Context, in *DeleteAttributionRequest, opts ...grpc.CallOption) (*Empty, error)
}

type attributionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAttributionServiceClient(cc grpc.ClientConnInterface) AttributionServiceClient {
	return &attributionServiceClient{cc}
}

func (c *attributionServiceClient) CreateAttribution(ctx context.Context, in *CreateAttributionRequest, opts ...grpc.CallOption) (*AttributionEntry, error) {
	return rpc.Invoke[AttributionEntry](ctx, c.cc, AttributionService_CreateAttribution_FullMethodName, in, opts...)
}

func (c *attributionServiceClient) GetAttribution(ctx context.Context, in *GetAttributionRequest, opts ...grpc.CallOption) (*AttributionEntry, error) {
	return rpc.Invoke[AttributionEntry](ctx, c.cc, AttributionService_GetAttribution_FullMethodName, in, opts...)
}

func (c *attributionServiceClient) ListAttributions(ctx context.Context, in *ListAttributionsRequest, opts ...grpc.CallOption) (*ListAttributionsResponse, error) {
	return rpc.Invoke[ListAttributionsResponse](ctx, c.cc, AttributionService_ListAttributions_FullMethodName, in, opts...)
}

func (c *attributionServiceClient) UpdateAttributionStatus(ctx context.Context, in *UpdateAttributionStatusRequest, opts ...grpc.CallOption) (*AttributionEntry, error) {
	return rpc.Invoke[AttributionEntry](ctx, c.cc, AttributionService_UpdateAttributionStatus_FullMethodName, in, opts...)
}

func (c *attributionServiceClient) DeleteAttribution(ctx context.Context, in *DeleteAttributionRequest, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, AttributionService_DeleteAttribution_FullMethodName, in, opts...)
}

// RepairTicketService

type RepairTicketServiceServer interface {
	CreateRepairTicket(context.Context, *CreateRepairTicketRequest) (*RepairTicketEntry, error)
	GetRepairTicket(context.Context, *GetRepairTicketRequest) (*RepairTicketEntry, error)
	ListRepairTickets(context.Context, *ListRepairTicketsRequest) (*ListRepairTicketsResponse, error)
	UpdateRepairTicketStatus(context.Context, *UpdateRepairTicketStatusRequest) (*RepairTicketEntry, error)
}

type UnimplementedRepairTicketServiceServer struct{}

func (UnimplementedRepairTicketServiceServer) CreateRepairTicket(context.Context, *CreateRepairTicketRequest) (*RepairTicketEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRepairTicket not implemented")
}
func (UnimplementedRepairTicketServiceServer) GetRepairTicket(context.Context, *GetRepairTicketRequest) (*RepairTicketEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRepairTicket not implemented")
}
func (UnimplementedRepairTicketServiceServer) ListRepairTickets(context.Context, *ListRepairTicketsRequest) (*ListRepairTicketsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRepairTickets not implemented")
}
func (UnimplementedRepairTicketServiceServer) UpdateRepairTicketStatus(context.Context, *UpdateRepairTicketStatusRequest) (*RepairTicketEntry, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateRepairTicketStatus not implemented")
}

var RepairTicketService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.ledger.v1.RepairTicketService",
	HandlerType: (*RepairTicketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateRepairTicket",
			Handler: rpc.Unary(RepairTicketService_CreateRepairTicket_FullMethodName, func(srv interface{}, ctx context.Context, req *CreateRepairTicketRequest) (*RepairTicketEntry, error) {
				return srv.(RepairTicketServiceServer).CreateRepairTicket(ctx, req)
			}),
		},
		{
			MethodName: "GetRepairTicket",
			Handler: rpc.Unary(RepairTicketService_GetRepairTicket_FullMethodName, func(srv interface{}, ctx context.Context, req *GetRepairTicketRequest) (*RepairTicketEntry, error) {
				return srv.(RepairTicketServiceServer).GetRepairTicket(ctx, req)
			}),
		},
		{
			MethodName: "ListRepairTickets",
			Handler: rpc.Unary(RepairTicketService_ListRepairTickets_FullMethodName, func(srv interface{}, ctx context.Context, req *ListRepairTicketsRequest) (*ListRepairTicketsResponse, error) {
				return srv.(RepairTicketServiceServer).ListRepairTickets(ctx, req)
			}),
		},
		{
			MethodName: "UpdateRepairTicketStatus",
			Handler: rpc.Unary(RepairTicketService_UpdateRepairTicketStatus_FullMethodName, func(srv interface{}, ctx context.Context, req *UpdateRepairTicketStatusRequest) (*RepairTicketEntry, error) {
				return srv.(RepairTicketServiceServer).UpdateRepairTicketStatus(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterRepairTicketServiceServer(s grpc.ServiceRegistrar, srv RepairTicketServiceServer) {
	s.RegisterService(&RepairTicketService_ServiceDesc, srv)
}

type RepairTicketServiceClient interface {
	CreateRepairTicket(ctx context.Context, in *CreateRepairTicketRequest, opts ...grpc.CallOption) (*RepairTicketEntry, error)
	GetRepairTicket(ctx context.Context, in *GetRepairTicketRequest, opts ...grpc.CallOption) (*RepairTicketEntry, error)
	ListRepairTickets(ctx context.Context, in *ListRepairTicketsRequest, opts ...grpc.CallOption) (*ListRepairTicketsResponse, error)
	UpdateRepairTicketStatus(ctx context.Context, in *UpdateRepairTicketStatusRequest, opts ...grpc.CallOption) (*RepairTicketEntry, error)
}

type repairTicketServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRepairTicketServiceClient(cc grpc.ClientConnInterface) RepairTicketServiceClient {
	return &repairTicketServiceClient{cc}
}

func (c *repairTicketServiceClient) CreateRepairTicket(ctx context.Context, in *CreateRepairTicketRequest, opts ...grpc.CallOption) (*RepairTicketEntry, error) {
	return rpc.Invoke[RepairTicketEntry](ctx, c.cc, RepairTicketService_CreateRepairTicket_FullMethodName, in, opts...)
}

func (c *repairTicketServiceClient) GetRepairTicket(ctx context.Context, in *GetRepairTicketRequest, opts ...grpc.CallOption) (*RepairTicketEntry, error) {
	return rpc.Invoke[RepairTicketEntry](ctx, c.cc, RepairTicketService_GetRepairTicket_FullMethodName, in, opts...)
}

func (c *repairTicketServiceClient) ListRepairTickets(ctx context.Context, in *ListRepairTicketsRequest, opts ...grpc.CallOption) (*ListRepairTicketsResponse, error) {
	return rpc.Invoke[ListRepairTicketsResponse](ctx, c.cc, RepairTicketService_ListRepairTickets_FullMethodName, in, opts...)
}

func (c *repairTicketServiceClient) UpdateRepairTicketStatus(ctx context.Context, in *UpdateRepairTicketStatusRequest, opts ...grpc.CallOption) (*RepairTicketEntry, error) {
	return rpc.Invoke[RepairTicketEntry](ctx, c.cc, RepairTicketService_UpdateRepairTicketStatus_FullMethodName, in, opts...)
}

// ReportService

type ReportServiceServer interface {
	GetDashboard(context.Context, *GetDashboardRequest) (*DashboardResponse, error)
}

type UnimplementedReportServiceServer struct{}

func (UnimplementedReportServiceServer) GetDashboard(context.Context, *GetDashboardRequest) (*DashboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDashboard not implemented")
}

var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.ledger.v1.ReportService",
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDashboard",
			Handler: rpc.Unary(ReportService_GetDashboard_FullMethodName, func(srv interface{}, ctx context.Context, req *GetDashboardRequest) (*DashboardResponse, error) {
				return srv.(ReportServiceServer).GetDashboard(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

type ReportServiceClient interface {
	GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*DashboardResponse, error)
}

type reportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportServiceClient(cc grpc.ClientConnInterface) ReportServiceClient {
	return &reportServiceClient{cc}
}

func (c *reportServiceClient) GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*DashboardResponse, error) {
	return rpc.Invoke[DashboardResponse](ctx, c.cc, ReportService_GetDashboard_FullMethodName, in, opts...)
}
