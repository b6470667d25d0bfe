// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: mapping/v1/mapping.proto

package mappingv1

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
	MappingService_ProcessDocument_FullMethodName = "/mapping.v1.MappingService/ProcessDocument"
	MappingService_ResolvePreview_FullMethodName  = "/mapping.v1.MappingService/ResolvePreview"
	MappingService_IdentifyIssuer_FullMethodName  = "/mapping.v1.MappingService/IdentifyIssuer"
	MappingService_SubmitDocument_FullMethodName  = "/mapping.v1.MappingService/SubmitDocument"
)

// MappingServiceClient is the client API for MappingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MappingService runs the per-document pipeline.
type MappingServiceClient interface {
	// ProcessDocument runs issuer identification, format classification,
	// config resolution, field mapping, and term learning for one document.
	ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error)
	// ResolvePreview returns the config the pipeline would use for a
	// scope pair, without processing anything.
	ResolvePreview(ctx context.Context, in *ResolvePreviewRequest, opts ...grpc.CallOption) (*ResolvePreviewResponse, error)
	// IdentifyIssuer resolves a recognized name to an organization.
	IdentifyIssuer(ctx context.Context, in *IdentifyIssuerRequest, opts ...grpc.CallOption) (*IdentifyIssuerResponse, error)
	// SubmitDocument queues the document for background processing and
	// returns once it is accepted.
	SubmitDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
}

type mappingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMappingServiceClient(cc grpc.ClientConnInterface) MappingServiceClient {
	return &mappingServiceClient{cc}
}

func (c *mappingServiceClient) ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentResponse)
	err := c.cc.Invoke(ctx, MappingService_ProcessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) ResolvePreview(ctx context.Context, in *ResolvePreviewRequest, opts ...grpc.CallOption) (*ResolvePreviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolvePreviewResponse)
	err := c.cc.Invoke(ctx, MappingService_ResolvePreview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) IdentifyIssuer(ctx context.Context, in *IdentifyIssuerRequest, opts ...grpc.CallOption) (*IdentifyIssuerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IdentifyIssuerResponse)
	err := c.cc.Invoke(ctx, MappingService_IdentifyIssuer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) SubmitDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, MappingService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MappingServiceServer is the server API for MappingService service.
// All implementations must embed UnimplementedMappingServiceServer
// for forward compatibility.
//
// MappingService runs the per-document pipeline.
type MappingServiceServer interface {
	// ProcessDocument runs issuer identification, format classification,
	// config resolution, field mapping, and term learning for one document.
	ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error)
	// ResolvePreview returns the config the pipeline would use for a
	// scope pair, without processing anything.
	ResolvePreview(context.Context, *ResolvePreviewRequest) (*ResolvePreviewResponse, error)
	// IdentifyIssuer resolves a recognized name to an organization.
	IdentifyIssuer(context.Context, *IdentifyIssuerRequest) (*IdentifyIssuerResponse, error)
	// SubmitDocument queues the document for background processing and
	// returns once it is accepted.
	SubmitDocument(context.Context, *ProcessDocumentRequest) (*SubmitDocumentResponse, error)
	mustEmbedUnimplementedMappingServiceServer()
}

// UnimplementedMappingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMappingServiceServer struct{}

func (UnimplementedMappingServiceServer) ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessDocument not implemented")
}
func (UnimplementedMappingServiceServer) ResolvePreview(context.Context, *ResolvePreviewRequest) (*ResolvePreviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolvePreview not implemented")
}
func (UnimplementedMappingServiceServer) IdentifyIssuer(context.Context, *IdentifyIssuerRequest) (*IdentifyIssuerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IdentifyIssuer not implemented")
}
func (UnimplementedMappingServiceServer) SubmitDocument(context.Context, *ProcessDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedMappingServiceServer) mustEmbedUnimplementedMappingServiceServer() {}
func (UnimplementedMappingServiceServer) testEmbeddedByValue()                        {}

// UnsafeMappingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MappingServiceServer will
// result in compilation errors.
type UnsafeMappingServiceServer interface {
	mustEmbedUnimplementedMappingServiceServer()
}

func RegisterMappingServiceServer(s grpc.ServiceRegistrar, srv MappingServiceServer) {
	// If the following call pancis, it indicates UnimplementedMappingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MappingService_ServiceDesc, srv)
}

func _MappingService_ProcessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).ProcessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_ProcessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).ProcessDocument(ctx, req.(*ProcessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_ResolvePreview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolvePreviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).ResolvePreview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_ResolvePreview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).ResolvePreview(ctx, req.(*ResolvePreviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_IdentifyIssuer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdentifyIssuerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).IdentifyIssuer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_IdentifyIssuer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).IdentifyIssuer(ctx, req.(*IdentifyIssuerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).SubmitDocument(ctx, req.(*ProcessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MappingService_ServiceDesc is the grpc.ServiceDesc for MappingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MappingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mapping.v1.MappingService",
	HandlerType: (*MappingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessDocument",
			Handler:    _MappingService_ProcessDocument_Handler,
		},
		{
			MethodName: "ResolvePreview",
			Handler:    _MappingService_ResolvePreview_Handler,
		},
		{
			MethodName: "IdentifyIssuer",
			Handler:    _MappingService_IdentifyIssuer_Handler,
		},
		{
			MethodName: "SubmitDocument",
			Handler:    _MappingService_SubmitDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mapping/v1/mapping.proto",
}

const (
	ConfigService_CreateMappingConfig_FullMethodName     = "/mapping.v1.ConfigService/CreateMappingConfig"
	ConfigService_ImportMappingConfig_FullMethodName     = "/mapping.v1.ConfigService/ImportMappingConfig"
	ConfigService_UpdateMappingConfig_FullMethodName     = "/mapping.v1.ConfigService/UpdateMappingConfig"
	ConfigService_ListMappingConfigs_FullMethodName      = "/mapping.v1.ConfigService/ListMappingConfigs"
	ConfigService_DeactivateMappingConfig_FullMethodName = "/mapping.v1.ConfigService/DeactivateMappingConfig"
	ConfigService_CreatePromptConfig_FullMethodName      = "/mapping.v1.ConfigService/CreatePromptConfig"
	ConfigService_ListPromptConfigs_FullMethodName       = "/mapping.v1.ConfigService/ListPromptConfigs"
	ConfigService_DeactivatePromptConfig_FullMethodName  = "/mapping.v1.ConfigService/DeactivatePromptConfig"
)

// ConfigServiceClient is the client API for ConfigService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ConfigService is the curator surface over stored configurations.
type ConfigServiceClient interface {
	CreateMappingConfig(ctx context.Context, in *CreateMappingConfigRequest, opts ...grpc.CallOption) (*MappingConfigResponse, error)
	// ImportMappingConfig accepts a raw JSON config document, validates
	// it against the config schema, and stores it.
	ImportMappingConfig(ctx context.Context, in *ImportMappingConfigRequest, opts ...grpc.CallOption) (*MappingConfigResponse, error)
	UpdateMappingConfig(ctx context.Context, in *UpdateMappingConfigRequest, opts ...grpc.CallOption) (*MappingConfigResponse, error)
	ListMappingConfigs(ctx context.Context, in *ListMappingConfigsRequest, opts ...grpc.CallOption) (*ListMappingConfigsResponse, error)
	DeactivateMappingConfig(ctx context.Context, in *DeactivateConfigRequest, opts ...grpc.CallOption) (*DeactivateConfigResponse, error)
	CreatePromptConfig(ctx context.Context, in *CreatePromptConfigRequest, opts ...grpc.CallOption) (*PromptConfigResponse, error)
	ListPromptConfigs(ctx context.Context, in *ListPromptConfigsRequest, opts ...grpc.CallOption) (*ListPromptConfigsResponse, error)
	DeactivatePromptConfig(ctx context.Context, in *DeactivateConfigRequest, opts ...grpc.CallOption) (*DeactivateConfigResponse, error)
}

type configServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewConfigServiceClient(cc grpc.ClientConnInterface) ConfigServiceClient {
	return &configServiceClient{cc}
}

func (c *configServiceClient) CreateMappingConfig(ctx context.Context, in *CreateMappingConfigRequest, opts ...grpc.CallOption) (*MappingConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MappingConfigResponse)
	err := c.cc.Invoke(ctx, ConfigService_CreateMappingConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configServiceClient) ImportMappingConfig(ctx context.Context, in *ImportMappingConfigRequest, opts ...grpc.CallOption) (*MappingConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MappingConfigResponse)
	err := c.cc.Invoke(ctx, ConfigService_ImportMappingConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configServiceClient) UpdateMappingConfig(ctx context.Context, in *UpdateMappingConfigRequest, opts ...grpc.CallOption) (*MappingConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MappingConfigResponse)
	err := c.cc.Invoke(ctx, ConfigService_UpdateMappingConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configServiceClient) ListMappingConfigs(ctx context.Context, in *ListMappingConfigsRequest, opts ...grpc.CallOption) (*ListMappingConfigsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMappingConfigsResponse)
	err := c.cc.Invoke(ctx, ConfigService_ListMappingConfigs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configServiceClient) DeactivateMappingConfig(ctx context.Context, in *DeactivateConfigRequest, opts ...grpc.CallOption) (*DeactivateConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeactivateConfigResponse)
	err := c.cc.Invoke(ctx, ConfigService_DeactivateMappingConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configServiceClient) CreatePromptConfig(ctx context.Context, in *CreatePromptConfigRequest, opts ...grpc.CallOption) (*PromptConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PromptConfigResponse)
	err := c.cc.Invoke(ctx, ConfigService_CreatePromptConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configServiceClient) ListPromptConfigs(ctx context.Context, in *ListPromptConfigsRequest, opts ...grpc.CallOption) (*ListPromptConfigsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPromptConfigsResponse)
	err := c.cc.Invoke(ctx, ConfigService_ListPromptConfigs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configServiceClient) DeactivatePromptConfig(ctx context.Context, in *DeactivateConfigRequest, opts ...grpc.CallOption) (*DeactivateConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeactivateConfigResponse)
	err := c.cc.Invoke(ctx, ConfigService_DeactivatePromptConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigServiceServer is the server API for ConfigService service.
// All implementations must embed UnimplementedConfigServiceServer
// for forward compatibility.
//
// ConfigService is the curator surface over stored configurations.
type ConfigServiceServer interface {
	CreateMappingConfig(context.Context, *CreateMappingConfigRequest) (*MappingConfigResponse, error)
	// ImportMappingConfig accepts a raw JSON config document, validates
	// it against the config schema, and stores it.
	ImportMappingConfig(context.Context, *ImportMappingConfigRequest) (*MappingConfigResponse, error)
	UpdateMappingConfig(context.Context, *UpdateMappingConfigRequest) (*MappingConfigResponse, error)
	ListMappingConfigs(context.Context, *ListMappingConfigsRequest) (*ListMappingConfigsResponse, error)
	DeactivateMappingConfig(context.Context, *DeactivateConfigRequest) (*DeactivateConfigResponse, error)
	CreatePromptConfig(context.Context, *CreatePromptConfigRequest) (*PromptConfigResponse, error)
	ListPromptConfigs(context.Context, *ListPromptConfigsRequest) (*ListPromptConfigsResponse, error)
	DeactivatePromptConfig(context.Context, *DeactivateConfigRequest) (*DeactivateConfigResponse, error)
	mustEmbedUnimplementedConfigServiceServer()
}

// UnimplementedConfigServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedConfigServiceServer struct{}

func (UnimplementedConfigServiceServer) CreateMappingConfig(context.Context, *CreateMappingConfigRequest) (*MappingConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMappingConfig not implemented")
}
func (UnimplementedConfigServiceServer) ImportMappingConfig(context.Context, *ImportMappingConfigRequest) (*MappingConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportMappingConfig not implemented")
}
func (UnimplementedConfigServiceServer) UpdateMappingConfig(context.Context, *UpdateMappingConfigRequest) (*MappingConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateMappingConfig not implemented")
}
func (UnimplementedConfigServiceServer) ListMappingConfigs(context.Context, *ListMappingConfigsRequest) (*ListMappingConfigsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMappingConfigs not implemented")
}
func (UnimplementedConfigServiceServer) DeactivateMappingConfig(context.Context, *DeactivateConfigRequest) (*DeactivateConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeactivateMappingConfig not implemented")
}
func (UnimplementedConfigServiceServer) CreatePromptConfig(context.Context, *CreatePromptConfigRequest) (*PromptConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePromptConfig not implemented")
}
func (UnimplementedConfigServiceServer) ListPromptConfigs(context.Context, *ListPromptConfigsRequest) (*ListPromptConfigsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPromptConfigs not implemented")
}
func (UnimplementedConfigServiceServer) DeactivatePromptConfig(context.Context, *DeactivateConfigRequest) (*DeactivateConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeactivatePromptConfig not implemented")
}
func (UnimplementedConfigServiceServer) mustEmbedUnimplementedConfigServiceServer() {}
func (UnimplementedConfigServiceServer) testEmbeddedByValue()                       {}

// UnsafeConfigServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ConfigServiceServer will
// result in compilation errors.
type UnsafeConfigServiceServer interface {
	mustEmbedUnimplementedConfigServiceServer()
}

func RegisterConfigServiceServer(s grpc.ServiceRegistrar, srv ConfigServiceServer) {
	// If the following call pancis, it indicates UnimplementedConfigServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ConfigService_ServiceDesc, srv)
}

func _ConfigService_CreateMappingConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMappingConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).CreateMappingConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_CreateMappingConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).CreateMappingConfig(ctx, req.(*CreateMappingConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConfigService_ImportMappingConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportMappingConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).ImportMappingConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_ImportMappingConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).ImportMappingConfig(ctx, req.(*ImportMappingConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConfigService_UpdateMappingConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateMappingConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).UpdateMappingConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_UpdateMappingConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).UpdateMappingConfig(ctx, req.(*UpdateMappingConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConfigService_ListMappingConfigs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMappingConfigsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).ListMappingConfigs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_ListMappingConfigs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).ListMappingConfigs(ctx, req.(*ListMappingConfigsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConfigService_DeactivateMappingConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeactivateConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).DeactivateMappingConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_DeactivateMappingConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).DeactivateMappingConfig(ctx, req.(*DeactivateConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConfigService_CreatePromptConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePromptConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).CreatePromptConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_CreatePromptConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).CreatePromptConfig(ctx, req.(*CreatePromptConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConfigService_ListPromptConfigs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPromptConfigsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).ListPromptConfigs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_ListPromptConfigs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).ListPromptConfigs(ctx, req.(*ListPromptConfigsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConfigService_DeactivatePromptConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeactivateConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigServiceServer).DeactivatePromptConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConfigService_DeactivatePromptConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConfigServiceServer).DeactivatePromptConfig(ctx, req.(*DeactivateConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ConfigService_ServiceDesc is the grpc.ServiceDesc for ConfigService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ConfigService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mapping.v1.ConfigService",
	HandlerType: (*ConfigServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMappingConfig",
			Handler:    _ConfigService_CreateMappingConfig_Handler,
		},
		{
			MethodName: "ImportMappingConfig",
			Handler:    _ConfigService_ImportMappingConfig_Handler,
		},
		{
			MethodName: "UpdateMappingConfig",
			Handler:    _ConfigService_UpdateMappingConfig_Handler,
		},
		{
			MethodName: "ListMappingConfigs",
			Handler:    _ConfigService_ListMappingConfigs_Handler,
		},
		{
			MethodName: "DeactivateMappingConfig",
			Handler:    _ConfigService_DeactivateMappingConfig_Handler,
		},
		{
			MethodName: "CreatePromptConfig",
			Handler:    _ConfigService_CreatePromptConfig_Handler,
		},
		{
			MethodName: "ListPromptConfigs",
			Handler:    _ConfigService_ListPromptConfigs_Handler,
		},
		{
			MethodName: "DeactivatePromptConfig",
			Handler:    _ConfigService_DeactivatePromptConfig_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mapping/v1/mapping.proto",
}

const (
	TermService_ListPendingTerms_FullMethodName = "/mapping.v1.TermService/ListPendingTerms"
	TermService_ReviewTerm_FullMethodName       = "/mapping.v1.TermService/ReviewTerm"
	TermService_GetTermStats_FullMethodName     = "/mapping.v1.TermService/GetTermStats"
	TermService_ExportTerms_FullMethodName      = "/mapping.v1.TermService/ExportTerms"
)

// TermServiceClient is the client API for TermService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TermService reviews and exports learned vocabulary.
type TermServiceClient interface {
	ListPendingTerms(ctx context.Context, in *ListPendingTermsRequest, opts ...grpc.CallOption) (*ListPendingTermsResponse, error)
	ReviewTerm(ctx context.Context, in *ReviewTermRequest, opts ...grpc.CallOption) (*ReviewTermResponse, error)
	GetTermStats(ctx context.Context, in *GetTermStatsRequest, opts ...grpc.CallOption) (*GetTermStatsResponse, error)
	ExportTerms(ctx context.Context, in *ExportTermsRequest, opts ...grpc.CallOption) (*ExportTermsResponse, error)
}

type termServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTermServiceClient(cc grpc.ClientConnInterface) TermServiceClient {
	return &termServiceClient{cc}
}

func (c *termServiceClient) ListPendingTerms(ctx context.Context, in *ListPendingTermsRequest, opts ...grpc.CallOption) (*ListPendingTermsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPendingTermsResponse)
	err := c.cc.Invoke(ctx, TermService_ListPendingTerms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *termServiceClient) ReviewTerm(ctx context.Context, in *ReviewTermRequest, opts ...grpc.CallOption) (*ReviewTermResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewTermResponse)
	err := c.cc.Invoke(ctx, TermService_ReviewTerm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *termServiceClient) GetTermStats(ctx context.Context, in *GetTermStatsRequest, opts ...grpc.CallOption) (*GetTermStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTermStatsResponse)
	err := c.cc.Invoke(ctx, TermService_GetTermStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *termServiceClient) ExportTerms(ctx context.Context, in *ExportTermsRequest, opts ...grpc.CallOption) (*ExportTermsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTermsResponse)
	err := c.cc.Invoke(ctx, TermService_ExportTerms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TermServiceServer is the server API for TermService service.
// All implementations must embed UnimplementedTermServiceServer
// for forward compatibility.
//
// TermService reviews and exports learned vocabulary.
type TermServiceServer interface {
	ListPendingTerms(context.Context, *ListPendingTermsRequest) (*ListPendingTermsResponse, error)
	ReviewTerm(context.Context, *ReviewTermRequest) (*ReviewTermResponse, error)
	GetTermStats(context.Context, *GetTermStatsRequest) (*GetTermStatsResponse, error)
	ExportTerms(context.Context, *ExportTermsRequest) (*ExportTermsResponse, error)
	mustEmbedUnimplementedTermServiceServer()
}

// UnimplementedTermServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTermServiceServer struct{}

func (UnimplementedTermServiceServer) ListPendingTerms(context.Context, *ListPendingTermsRequest) (*ListPendingTermsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPendingTerms not implemented")
}
func (UnimplementedTermServiceServer) ReviewTerm(context.Context, *ReviewTermRequest) (*ReviewTermResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewTerm not implemented")
}
func (UnimplementedTermServiceServer) GetTermStats(context.Context, *GetTermStatsRequest) (*GetTermStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTermStats not implemented")
}
func (UnimplementedTermServiceServer) ExportTerms(context.Context, *ExportTermsRequest) (*ExportTermsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportTerms not implemented")
}
func (UnimplementedTermServiceServer) mustEmbedUnimplementedTermServiceServer() {}
func (UnimplementedTermServiceServer) testEmbeddedByValue()                     {}

// UnsafeTermServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TermServiceServer will
// result in compilation errors.
type UnsafeTermServiceServer interface {
	mustEmbedUnimplementedTermServiceServer()
}

func RegisterTermServiceServer(s grpc.ServiceRegistrar, srv TermServiceServer) {
	// If the following call pancis, it indicates UnimplementedTermServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TermService_ServiceDesc, srv)
}

func _TermService_ListPendingTerms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPendingTermsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TermServiceServer).ListPendingTerms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TermService_ListPendingTerms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TermServiceServer).ListPendingTerms(ctx, req.(*ListPendingTermsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TermService_ReviewTerm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewTermRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TermServiceServer).ReviewTerm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TermService_ReviewTerm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TermServiceServer).ReviewTerm(ctx, req.(*ReviewTermRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TermService_GetTermStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTermStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TermServiceServer).GetTermStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TermService_GetTermStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TermServiceServer).GetTermStats(ctx, req.(*GetTermStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TermService_ExportTerms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTermsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TermServiceServer).ExportTerms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TermService_ExportTerms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TermServiceServer).ExportTerms(ctx, req.(*ExportTermsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TermService_ServiceDesc is the grpc.ServiceDesc for TermService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TermService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mapping.v1.TermService",
	HandlerType: (*TermServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPendingTerms",
			Handler:    _TermService_ListPendingTerms_Handler,
		},
		{
			MethodName: "ReviewTerm",
			Handler:    _TermService_ReviewTerm_Handler,
		},
		{
			MethodName: "GetTermStats",
			Handler:    _TermService_GetTermStats_Handler,
		},
		{
			MethodName: "ExportTerms",
			Handler:    _TermService_ExportTerms_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mapping/v1/mapping.proto",
}
