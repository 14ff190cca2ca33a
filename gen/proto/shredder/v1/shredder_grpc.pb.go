// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: shredder/v1/shredder.proto

package shredderv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ShredderService_ProcessBlob_FullMethodName     = "/shredder.v1.ShredderService/ProcessBlob"
	ShredderService_Train_FullMethodName           = "/shredder.v1.ShredderService/Train"
	ShredderService_ListDocuments_FullMethodName   = "/shredder.v1.ShredderService/ListDocuments"
	ShredderService_ExportDocuments_FullMethodName = "/shredder.v1.ShredderService/ExportDocuments"
)

// ShredderServiceClient is the client API for ShredderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ShredderService exposes the pipeline over gRPC: push a blob through its
// stage, train a model, and inspect or export shredded documents.
type ShredderServiceClient interface {
	// ProcessBlob runs the pipeline stage for one blob already present in a
	// routable container. Used by operators to reprocess or to drive the
	// pipeline without the filesystem watcher.
	ProcessBlob(ctx context.Context, in *ProcessBlobRequest, opts ...grpc.CallOption) (*ProcessBlobResponse, error)
	// Train runs a full training cycle and registers the resulting model.
	Train(ctx context.Context, in *TrainRequest, opts ...grpc.CallOption) (*TrainResponse, error)
	// ListDocuments returns shredded documents, newest window first.
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	// ExportDocuments returns an XLSX workbook of documents and line items.
	ExportDocuments(ctx context.Context, in *ExportDocumentsRequest, opts ...grpc.CallOption) (*ExportDocumentsResponse, error)
}

type shredderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShredderServiceClient(cc grpc.ClientConnInterface) ShredderServiceClient {
	return &shredderServiceClient{cc}
}

func (c *shredderServiceClient) ProcessBlob(ctx context.Context, in *ProcessBlobRequest, opts ...grpc.CallOption) (*ProcessBlobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessBlobResponse)
	err := c.cc.Invoke(ctx, ShredderService_ProcessBlob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shredderServiceClient) Train(ctx context.Context, in *TrainRequest, opts ...grpc.CallOption) (*TrainResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TrainResponse)
	err := c.cc.Invoke(ctx, ShredderService_Train_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shredderServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, ShredderService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shredderServiceClient) ExportDocuments(ctx context.Context, in *ExportDocumentsRequest, opts ...grpc.CallOption) (*ExportDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDocumentsResponse)
	err := c.cc.Invoke(ctx, ShredderService_ExportDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShredderServiceServer is the server API for ShredderService service.
// All implementations must embed UnimplementedShredderServiceServer
// for forward compatibility.
//
// ShredderService exposes the pipeline over gRPC: push a blob through its
// stage, train a model, and inspect or export shredded documents.
type ShredderServiceServer interface {
	// ProcessBlob runs the pipeline stage for one blob already present in a
	// routable container. Used by operators to reprocess or to drive the
	// pipeline without the filesystem watcher.
	ProcessBlob(context.Context, *ProcessBlobRequest) (*ProcessBlobResponse, error)
	// Train runs a full training cycle and registers the resulting model.
	Train(context.Context, *TrainRequest) (*TrainResponse, error)
	// ListDocuments returns shredded documents, newest window first.
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	// ExportDocuments returns an XLSX workbook of documents and line items.
	ExportDocuments(context.Context, *ExportDocumentsRequest) (*ExportDocumentsResponse, error)
	mustEmbedUnimplementedShredderServiceServer()
}

// UnimplementedShredderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedShredderServiceServer struct{}

func (UnimplementedShredderServiceServer) ProcessBlob(context.Context, *ProcessBlobRequest) (*ProcessBlobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessBlob not implemented")
}
func (UnimplementedShredderServiceServer) Train(context.Context, *TrainRequest) (*TrainResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Train not implemented")
}
func (UnimplementedShredderServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedShredderServiceServer) ExportDocuments(context.Context, *ExportDocumentsRequest) (*ExportDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportDocuments not implemented")
}
func (UnimplementedShredderServiceServer) mustEmbedUnimplementedShredderServiceServer() {}
func (UnimplementedShredderServiceServer) testEmbeddedByValue()                         {}

// UnsafeShredderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ShredderServiceServer will
// result in compilation errors.
type UnsafeShredderServiceServer interface {
	mustEmbedUnimplementedShredderServiceServer()
}

func RegisterShredderServiceServer(s grpc.ServiceRegistrar, srv ShredderServiceServer) {
	// If the following call pancis, it indicates UnimplementedShredderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ShredderService_ServiceDesc, srv)
}

func _ShredderService_ProcessBlob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessBlobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShredderServiceServer).ProcessBlob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShredderService_ProcessBlob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShredderServiceServer).ProcessBlob(ctx, req.(*ProcessBlobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShredderService_Train_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TrainRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShredderServiceServer).Train(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShredderService_Train_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShredderServiceServer).Train(ctx, req.(*TrainRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShredderService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShredderServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShredderService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShredderServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShredderService_ExportDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShredderServiceServer).ExportDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShredderService_ExportDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShredderServiceServer).ExportDocuments(ctx, req.(*ExportDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShredderService_ServiceDesc is the grpc.ServiceDesc for ShredderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ShredderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shredder.v1.ShredderService",
	HandlerType: (*ShredderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessBlob",
			Handler:    _ShredderService_ProcessBlob_Handler,
		},
		{
			MethodName: "Train",
			Handler:    _ShredderService_Train_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _ShredderService_ListDocuments_Handler,
		},
		{
			MethodName: "ExportDocuments",
			Handler:    _ShredderService_ExportDocuments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shredder/v1/shredder.proto",
}
