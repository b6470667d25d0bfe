// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: mapping/v1/mapping.proto

package mappingv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessDocumentRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	DocumentId        string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Fields            *structpb.Struct       `protobuf:"bytes,2,opt,name=fields,proto3" json:"fields,omitempty"`
	LineItems         []*structpb.Struct     `protobuf:"bytes,3,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	IssuerName        string                 `protobuf:"bytes,4,opt,name=issuer_name,json=issuerName,proto3" json:"issuer_name,omitempty"`
	IssuerConfidence  float64                `protobuf:"fixed64,5,opt,name=issuer_confidence,json=issuerConfidence,proto3" json:"issuer_confidence,omitempty"`
	HeaderText        string                 `protobuf:"bytes,6,opt,name=header_text,json=headerText,proto3" json:"header_text,omitempty"`
	LogoSignature     string                 `protobuf:"bytes,7,opt,name=logo_signature,json=logoSignature,proto3" json:"logo_signature,omitempty"`
	LayoutFingerprint string                 `protobuf:"bytes,8,opt,name=layout_fingerprint,json=layoutFingerprint,proto3" json:"layout_fingerprint,omitempty"`
	DetectedFields    []string               `protobuf:"bytes,9,rep,name=detected_fields,json=detectedFields,proto3" json:"detected_fields,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetFields() *structpb.Struct {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ProcessDocumentRequest) GetLineItems() []*structpb.Struct {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *ProcessDocumentRequest) GetIssuerName() string {
	if x != nil {
		return x.IssuerName
	}
	return ""
}

func (x *ProcessDocumentRequest) GetIssuerConfidence() float64 {
	if x != nil {
		return x.IssuerConfidence
	}
	return 0
}

func (x *ProcessDocumentRequest) GetHeaderText() string {
	if x != nil {
		return x.HeaderText
	}
	return ""
}

func (x *ProcessDocumentRequest) GetLogoSignature() string {
	if x != nil {
		return x.LogoSignature
	}
	return ""
}

func (x *ProcessDocumentRequest) GetLayoutFingerprint() string {
	if x != nil {
		return x.LayoutFingerprint
	}
	return ""
}

func (x *ProcessDocumentRequest) GetDetectedFields() []string {
	if x != nil {
		return x.DetectedFields
	}
	return nil
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *MappedRecord          `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	Issuer        *IssuerMatch           `protobuf:"bytes,2,opt,name=issuer,proto3" json:"issuer,omitempty"`
	Format        *FormatMatch           `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Terms         *TermLearnResult       `protobuf:"bytes,4,opt,name=terms,proto3" json:"terms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentResponse) GetRecord() *MappedRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

func (x *ProcessDocumentResponse) GetIssuer() *IssuerMatch {
	if x != nil {
		return x.Issuer
	}
	return nil
}

func (x *ProcessDocumentResponse) GetFormat() *FormatMatch {
	if x != nil {
		return x.Format
	}
	return nil
}

func (x *ProcessDocumentResponse) GetTerms() *TermLearnResult {
	if x != nil {
		return x.Terms
	}
	return nil
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitDocumentResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type MappedRecord struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	OrganizationId string                 `protobuf:"bytes,2,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	FormatId       string                 `protobuf:"bytes,3,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	Fields         map[string]string      `protobuf:"bytes,4,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	LineItems      []*LineItem            `protobuf:"bytes,5,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	Audit          []*FieldAudit          `protobuf:"bytes,6,rep,name=audit,proto3" json:"audit,omitempty"`
	Tier           string                 `protobuf:"bytes,7,opt,name=tier,proto3" json:"tier,omitempty"`
	Status         string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	Stats          *ExtractionStats       `protobuf:"bytes,9,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MappedRecord) Reset() {
	*x = MappedRecord{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MappedRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MappedRecord) ProtoMessage() {}

func (x *MappedRecord) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MappedRecord.ProtoReflect.Descriptor instead.
func (*MappedRecord) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{3}
}

func (x *MappedRecord) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *MappedRecord) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *MappedRecord) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

func (x *MappedRecord) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *MappedRecord) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *MappedRecord) GetAudit() []*FieldAudit {
	if x != nil {
		return x.Audit
	}
	return nil
}

func (x *MappedRecord) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

func (x *MappedRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *MappedRecord) GetStats() *ExtractionStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        map[string]string      `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{4}
}

func (x *LineItem) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

type FieldAudit struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetField   string                 `protobuf:"bytes,1,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	SourceField   string                 `protobuf:"bytes,2,opt,name=source_field,json=sourceField,proto3" json:"source_field,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	RawValue      string                 `protobuf:"bytes,4,opt,name=raw_value,json=rawValue,proto3" json:"raw_value,omitempty"`
	Value         string                 `protobuf:"bytes,5,opt,name=value,proto3" json:"value,omitempty"`
	LineItem      int32                  `protobuf:"varint,6,opt,name=line_item,json=lineItem,proto3" json:"line_item,omitempty"`
	Error         string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldAudit) Reset() {
	*x = FieldAudit{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldAudit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldAudit) ProtoMessage() {}

func (x *FieldAudit) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldAudit.ProtoReflect.Descriptor instead.
func (*FieldAudit) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{5}
}

func (x *FieldAudit) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

func (x *FieldAudit) GetSourceField() string {
	if x != nil {
		return x.SourceField
	}
	return ""
}

func (x *FieldAudit) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *FieldAudit) GetRawValue() string {
	if x != nil {
		return x.RawValue
	}
	return ""
}

func (x *FieldAudit) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *FieldAudit) GetLineItem() int32 {
	if x != nil {
		return x.LineItem
	}
	return 0
}

func (x *FieldAudit) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ExtractionStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalFields   int32                  `protobuf:"varint,1,opt,name=total_fields,json=totalFields,proto3" json:"total_fields,omitempty"`
	MappedFields  int32                  `protobuf:"varint,2,opt,name=mapped_fields,json=mappedFields,proto3" json:"mapped_fields,omitempty"`
	FailedFields  int32                  `protobuf:"varint,3,opt,name=failed_fields,json=failedFields,proto3" json:"failed_fields,omitempty"`
	ProcessingMs  int64                  `protobuf:"varint,4,opt,name=processing_ms,json=processingMs,proto3" json:"processing_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionStats) Reset() {
	*x = ExtractionStats{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionStats) ProtoMessage() {}

func (x *ExtractionStats) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionStats.ProtoReflect.Descriptor instead.
func (*ExtractionStats) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractionStats) GetTotalFields() int32 {
	if x != nil {
		return x.TotalFields
	}
	return 0
}

func (x *ExtractionStats) GetMappedFields() int32 {
	if x != nil {
		return x.MappedFields
	}
	return 0
}

func (x *ExtractionStats) GetFailedFields() int32 {
	if x != nil {
		return x.FailedFields
	}
	return 0
}

func (x *ExtractionStats) GetProcessingMs() int64 {
	if x != nil {
		return x.ProcessingMs
	}
	return 0
}

type IssuerMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Organization  *Organization          `protobuf:"bytes,1,opt,name=organization,proto3" json:"organization,omitempty"`
	Method        string                 `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	MatchedOn     string                 `protobuf:"bytes,4,opt,name=matched_on,json=matchedOn,proto3" json:"matched_on,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IssuerMatch) Reset() {
	*x = IssuerMatch{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IssuerMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssuerMatch) ProtoMessage() {}

func (x *IssuerMatch) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssuerMatch.ProtoReflect.Descriptor instead.
func (*IssuerMatch) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{7}
}

func (x *IssuerMatch) GetOrganization() *Organization {
	if x != nil {
		return x.Organization
	}
	return nil
}

func (x *IssuerMatch) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *IssuerMatch) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *IssuerMatch) GetMatchedOn() string {
	if x != nil {
		return x.MatchedOn
	}
	return ""
}

type Organization struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Code          string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	Aliases       []string               `protobuf:"bytes,4,rep,name=aliases,proto3" json:"aliases,omitempty"`
	AutoCreated   bool                   `protobuf:"varint,5,opt,name=auto_created,json=autoCreated,proto3" json:"auto_created,omitempty"`
	IsActive      bool                   `protobuf:"varint,6,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Organization) Reset() {
	*x = Organization{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Organization) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Organization) ProtoMessage() {}

func (x *Organization) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Organization.ProtoReflect.Descriptor instead.
func (*Organization) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{8}
}

func (x *Organization) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Organization) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Organization) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Organization) GetAliases() []string {
	if x != nil {
		return x.Aliases
	}
	return nil
}

func (x *Organization) GetAutoCreated() bool {
	if x != nil {
		return x.AutoCreated
	}
	return false
}

func (x *Organization) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Organization) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Organization) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type FormatMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Format        *DocumentFormat        `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"`
	Method        string                 `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FormatMatch) Reset() {
	*x = FormatMatch{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FormatMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FormatMatch) ProtoMessage() {}

func (x *FormatMatch) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FormatMatch.ProtoReflect.Descriptor instead.
func (*FormatMatch) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{9}
}

func (x *FormatMatch) GetFormat() *DocumentFormat {
	if x != nil {
		return x.Format
	}
	return nil
}

func (x *FormatMatch) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *FormatMatch) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type DocumentFormat struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OrganizationId string                 `protobuf:"bytes,2,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	Name           string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Fingerprint    string                 `protobuf:"bytes,4,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	AutoCreated    bool                   `protobuf:"varint,5,opt,name=auto_created,json=autoCreated,proto3" json:"auto_created,omitempty"`
	IsActive       bool                   `protobuf:"varint,6,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	MatchCount     int32                  `protobuf:"varint,7,opt,name=match_count,json=matchCount,proto3" json:"match_count,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DocumentFormat) Reset() {
	*x = DocumentFormat{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentFormat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentFormat) ProtoMessage() {}

func (x *DocumentFormat) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentFormat.ProtoReflect.Descriptor instead.
func (*DocumentFormat) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{10}
}

func (x *DocumentFormat) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DocumentFormat) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *DocumentFormat) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DocumentFormat) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *DocumentFormat) GetAutoCreated() bool {
	if x != nil {
		return x.AutoCreated
	}
	return false
}

func (x *DocumentFormat) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *DocumentFormat) GetMatchCount() int32 {
	if x != nil {
		return x.MatchCount
	}
	return 0
}

func (x *DocumentFormat) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *DocumentFormat) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type TermLearnResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordedNew   int32                  `protobuf:"varint,1,opt,name=recorded_new,json=recordedNew,proto3" json:"recorded_new,omitempty"`
	RecordedSeen  int32                  `protobuf:"varint,2,opt,name=recorded_seen,json=recordedSeen,proto3" json:"recorded_seen,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TermLearnResult) Reset() {
	*x = TermLearnResult{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TermLearnResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TermLearnResult) ProtoMessage() {}

func (x *TermLearnResult) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TermLearnResult.ProtoReflect.Descriptor instead.
func (*TermLearnResult) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{11}
}

func (x *TermLearnResult) GetRecordedNew() int32 {
	if x != nil {
		return x.RecordedNew
	}
	return 0
}

func (x *TermLearnResult) GetRecordedSeen() int32 {
	if x != nil {
		return x.RecordedSeen
	}
	return 0
}

type ResolvePreviewRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	FormatId       string                 `protobuf:"bytes,2,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ResolvePreviewRequest) Reset() {
	*x = ResolvePreviewRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolvePreviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolvePreviewRequest) ProtoMessage() {}

func (x *ResolvePreviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolvePreviewRequest.ProtoReflect.Descriptor instead.
func (*ResolvePreviewRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{12}
}

func (x *ResolvePreviewRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *ResolvePreviewRequest) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

type ResolvePreviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Config        *MappingConfig         `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	Tier          string                 `protobuf:"bytes,2,opt,name=tier,proto3" json:"tier,omitempty"`
	Prompts       []*ResolvedPrompt      `protobuf:"bytes,3,rep,name=prompts,proto3" json:"prompts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolvePreviewResponse) Reset() {
	*x = ResolvePreviewResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolvePreviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolvePreviewResponse) ProtoMessage() {}

func (x *ResolvePreviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolvePreviewResponse.ProtoReflect.Descriptor instead.
func (*ResolvePreviewResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{13}
}

func (x *ResolvePreviewResponse) GetConfig() *MappingConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

func (x *ResolvePreviewResponse) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

func (x *ResolvePreviewResponse) GetPrompts() []*ResolvedPrompt {
	if x != nil {
		return x.Prompts
	}
	return nil
}

type ResolvedPrompt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompt        *PromptConfig          `protobuf:"bytes,1,opt,name=prompt,proto3" json:"prompt,omitempty"`
	Tier          string                 `protobuf:"bytes,2,opt,name=tier,proto3" json:"tier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolvedPrompt) Reset() {
	*x = ResolvedPrompt{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolvedPrompt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolvedPrompt) ProtoMessage() {}

func (x *ResolvedPrompt) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolvedPrompt.ProtoReflect.Descriptor instead.
func (*ResolvedPrompt) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{14}
}

func (x *ResolvedPrompt) GetPrompt() *PromptConfig {
	if x != nil {
		return x.Prompt
	}
	return nil
}

func (x *ResolvedPrompt) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

type IdentifyIssuerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IdentifyIssuerRequest) Reset() {
	*x = IdentifyIssuerRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IdentifyIssuerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IdentifyIssuerRequest) ProtoMessage() {}

func (x *IdentifyIssuerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IdentifyIssuerRequest.ProtoReflect.Descriptor instead.
func (*IdentifyIssuerRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{15}
}

func (x *IdentifyIssuerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *IdentifyIssuerRequest) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type IdentifyIssuerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Match         *IssuerMatch           `protobuf:"bytes,1,opt,name=match,proto3" json:"match,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IdentifyIssuerResponse) Reset() {
	*x = IdentifyIssuerResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IdentifyIssuerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IdentifyIssuerResponse) ProtoMessage() {}

func (x *IdentifyIssuerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IdentifyIssuerResponse.ProtoReflect.Descriptor instead.
func (*IdentifyIssuerResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{16}
}

func (x *IdentifyIssuerResponse) GetMatch() *IssuerMatch {
	if x != nil {
		return x.Match
	}
	return nil
}

type FieldMapping struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourceField   string                 `protobuf:"bytes,1,opt,name=source_field,json=sourceField,proto3" json:"source_field,omitempty"`
	TargetField   string                 `protobuf:"bytes,2,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	Required      bool                   `protobuf:"varint,3,opt,name=required,proto3" json:"required,omitempty"`
	DefaultValue  *string                `protobuf:"bytes,4,opt,name=default_value,json=defaultValue,proto3,oneof" json:"default_value,omitempty"`
	Transform     string                 `protobuf:"bytes,5,opt,name=transform,proto3" json:"transform,omitempty"`
	Options       *TransformOptions      `protobuf:"bytes,6,opt,name=options,proto3" json:"options,omitempty"`
	IsLineItem    bool                   `protobuf:"varint,7,opt,name=is_line_item,json=isLineItem,proto3" json:"is_line_item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldMapping) Reset() {
	*x = FieldMapping{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldMapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldMapping) ProtoMessage() {}

func (x *FieldMapping) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldMapping.ProtoReflect.Descriptor instead.
func (*FieldMapping) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{17}
}

func (x *FieldMapping) GetSourceField() string {
	if x != nil {
		return x.SourceField
	}
	return ""
}

func (x *FieldMapping) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

func (x *FieldMapping) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *FieldMapping) GetDefaultValue() string {
	if x != nil && x.DefaultValue != nil {
		return *x.DefaultValue
	}
	return ""
}

func (x *FieldMapping) GetTransform() string {
	if x != nil {
		return x.Transform
	}
	return ""
}

func (x *FieldMapping) GetOptions() *TransformOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *FieldMapping) GetIsLineItem() bool {
	if x != nil {
		return x.IsLineItem
	}
	return false
}

type TransformOptions struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DateFormat    string                 `protobuf:"bytes,1,opt,name=date_format,json=dateFormat,proto3" json:"date_format,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"`
	Locale        string                 `protobuf:"bytes,3,opt,name=locale,proto3" json:"locale,omitempty"`
	PatternName   string                 `protobuf:"bytes,4,opt,name=pattern_name,json=patternName,proto3" json:"pattern_name,omitempty"`
	Delimiter     string                 `protobuf:"bytes,5,opt,name=delimiter,proto3" json:"delimiter,omitempty"`
	Index         int32                  `protobuf:"varint,6,opt,name=index,proto3" json:"index,omitempty"`
	Search        string                 `protobuf:"bytes,7,opt,name=search,proto3" json:"search,omitempty"`
	Replacement   string                 `protobuf:"bytes,8,opt,name=replacement,proto3" json:"replacement,omitempty"`
	Prefix        string                 `protobuf:"bytes,9,opt,name=prefix,proto3" json:"prefix,omitempty"`
	Suffix        string                 `protobuf:"bytes,10,opt,name=suffix,proto3" json:"suffix,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransformOptions) Reset() {
	*x = TransformOptions{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransformOptions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransformOptions) ProtoMessage() {}

func (x *TransformOptions) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransformOptions.ProtoReflect.Descriptor instead.
func (*TransformOptions) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{18}
}

func (x *TransformOptions) GetDateFormat() string {
	if x != nil {
		return x.DateFormat
	}
	return ""
}

func (x *TransformOptions) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *TransformOptions) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

func (x *TransformOptions) GetPatternName() string {
	if x != nil {
		return x.PatternName
	}
	return ""
}

func (x *TransformOptions) GetDelimiter() string {
	if x != nil {
		return x.Delimiter
	}
	return ""
}

func (x *TransformOptions) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *TransformOptions) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

func (x *TransformOptions) GetReplacement() string {
	if x != nil {
		return x.Replacement
	}
	return ""
}

func (x *TransformOptions) GetPrefix() string {
	if x != nil {
		return x.Prefix
	}
	return ""
}

func (x *TransformOptions) GetSuffix() string {
	if x != nil {
		return x.Suffix
	}
	return ""
}

type MappingConfig struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OrganizationId string                 `protobuf:"bytes,2,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	FormatId       string                 `protobuf:"bytes,3,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	Name           string                 `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Mappings       []*FieldMapping        `protobuf:"bytes,5,rep,name=mappings,proto3" json:"mappings,omitempty"`
	IsActive       bool                   `protobuf:"varint,6,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	Priority       int32                  `protobuf:"varint,7,opt,name=priority,proto3" json:"priority,omitempty"`
	CreatedBy      string                 `protobuf:"bytes,8,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MappingConfig) Reset() {
	*x = MappingConfig{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MappingConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MappingConfig) ProtoMessage() {}

func (x *MappingConfig) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MappingConfig.ProtoReflect.Descriptor instead.
func (*MappingConfig) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{19}
}

func (x *MappingConfig) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MappingConfig) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *MappingConfig) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

func (x *MappingConfig) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *MappingConfig) GetMappings() []*FieldMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

func (x *MappingConfig) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *MappingConfig) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *MappingConfig) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

func (x *MappingConfig) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *MappingConfig) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateMappingConfigRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	FormatId       string                 `protobuf:"bytes,2,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	Name           string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Mappings       []*FieldMapping        `protobuf:"bytes,4,rep,name=mappings,proto3" json:"mappings,omitempty"`
	Priority       int32                  `protobuf:"varint,5,opt,name=priority,proto3" json:"priority,omitempty"`
	CreatedBy      string                 `protobuf:"bytes,6,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateMappingConfigRequest) Reset() {
	*x = CreateMappingConfigRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMappingConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMappingConfigRequest) ProtoMessage() {}

func (x *CreateMappingConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMappingConfigRequest.ProtoReflect.Descriptor instead.
func (*CreateMappingConfigRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{20}
}

func (x *CreateMappingConfigRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *CreateMappingConfigRequest) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

func (x *CreateMappingConfigRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateMappingConfigRequest) GetMappings() []*FieldMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

func (x *CreateMappingConfigRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *CreateMappingConfigRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type ImportMappingConfigRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// JSON config document: {name, organization_id?, format_id?,
	// priority?, is_active?, mappings: [...]}.
	Document      []byte `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	CreatedBy     string `protobuf:"bytes,2,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportMappingConfigRequest) Reset() {
	*x = ImportMappingConfigRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportMappingConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportMappingConfigRequest) ProtoMessage() {}

func (x *ImportMappingConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportMappingConfigRequest.ProtoReflect.Descriptor instead.
func (*ImportMappingConfigRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{21}
}

func (x *ImportMappingConfigRequest) GetDocument() []byte {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ImportMappingConfigRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type UpdateMappingConfigRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Mappings      []*FieldMapping        `protobuf:"bytes,3,rep,name=mappings,proto3" json:"mappings,omitempty"`
	Priority      int32                  `protobuf:"varint,4,opt,name=priority,proto3" json:"priority,omitempty"`
	IsActive      bool                   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateMappingConfigRequest) Reset() {
	*x = UpdateMappingConfigRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateMappingConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateMappingConfigRequest) ProtoMessage() {}

func (x *UpdateMappingConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateMappingConfigRequest.ProtoReflect.Descriptor instead.
func (*UpdateMappingConfigRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{22}
}

func (x *UpdateMappingConfigRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateMappingConfigRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateMappingConfigRequest) GetMappings() []*FieldMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

func (x *UpdateMappingConfigRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *UpdateMappingConfigRequest) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type MappingConfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Config        *MappingConfig         `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MappingConfigResponse) Reset() {
	*x = MappingConfigResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MappingConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MappingConfigResponse) ProtoMessage() {}

func (x *MappingConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MappingConfigResponse.ProtoReflect.Descriptor instead.
func (*MappingConfigResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{23}
}

func (x *MappingConfigResponse) GetConfig() *MappingConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

type ListMappingConfigsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMappingConfigsRequest) Reset() {
	*x = ListMappingConfigsRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMappingConfigsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMappingConfigsRequest) ProtoMessage() {}

func (x *ListMappingConfigsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMappingConfigsRequest.ProtoReflect.Descriptor instead.
func (*ListMappingConfigsRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{24}
}

type ListMappingConfigsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Configs       []*MappingConfig       `protobuf:"bytes,1,rep,name=configs,proto3" json:"configs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMappingConfigsResponse) Reset() {
	*x = ListMappingConfigsResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMappingConfigsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMappingConfigsResponse) ProtoMessage() {}

func (x *ListMappingConfigsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMappingConfigsResponse.ProtoReflect.Descriptor instead.
func (*ListMappingConfigsResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{25}
}

func (x *ListMappingConfigsResponse) GetConfigs() []*MappingConfig {
	if x != nil {
		return x.Configs
	}
	return nil
}

type DeactivateConfigRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateConfigRequest) Reset() {
	*x = DeactivateConfigRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateConfigRequest) ProtoMessage() {}

func (x *DeactivateConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateConfigRequest.ProtoReflect.Descriptor instead.
func (*DeactivateConfigRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{26}
}

func (x *DeactivateConfigRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeactivateConfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateConfigResponse) Reset() {
	*x = DeactivateConfigResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateConfigResponse) ProtoMessage() {}

func (x *DeactivateConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateConfigResponse.ProtoReflect.Descriptor instead.
func (*DeactivateConfigResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{27}
}

type PromptConfig struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OrganizationId string                 `protobuf:"bytes,2,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	FormatId       string                 `protobuf:"bytes,3,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	Purpose        string                 `protobuf:"bytes,4,opt,name=purpose,proto3" json:"purpose,omitempty"`
	Template       string                 `protobuf:"bytes,5,opt,name=template,proto3" json:"template,omitempty"`
	Version        int32                  `protobuf:"varint,6,opt,name=version,proto3" json:"version,omitempty"`
	IsActive       bool                   `protobuf:"varint,7,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	Priority       int32                  `protobuf:"varint,8,opt,name=priority,proto3" json:"priority,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *PromptConfig) Reset() {
	*x = PromptConfig{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromptConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromptConfig) ProtoMessage() {}

func (x *PromptConfig) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromptConfig.ProtoReflect.Descriptor instead.
func (*PromptConfig) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{28}
}

func (x *PromptConfig) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PromptConfig) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *PromptConfig) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

func (x *PromptConfig) GetPurpose() string {
	if x != nil {
		return x.Purpose
	}
	return ""
}

func (x *PromptConfig) GetTemplate() string {
	if x != nil {
		return x.Template
	}
	return ""
}

func (x *PromptConfig) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *PromptConfig) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *PromptConfig) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *PromptConfig) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *PromptConfig) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreatePromptConfigRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	FormatId       string                 `protobuf:"bytes,2,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	Purpose        string                 `protobuf:"bytes,3,opt,name=purpose,proto3" json:"purpose,omitempty"`
	Template       string                 `protobuf:"bytes,4,opt,name=template,proto3" json:"template,omitempty"`
	Priority       int32                  `protobuf:"varint,5,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreatePromptConfigRequest) Reset() {
	*x = CreatePromptConfigRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePromptConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePromptConfigRequest) ProtoMessage() {}

func (x *CreatePromptConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePromptConfigRequest.ProtoReflect.Descriptor instead.
func (*CreatePromptConfigRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{29}
}

func (x *CreatePromptConfigRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *CreatePromptConfigRequest) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

func (x *CreatePromptConfigRequest) GetPurpose() string {
	if x != nil {
		return x.Purpose
	}
	return ""
}

func (x *CreatePromptConfigRequest) GetTemplate() string {
	if x != nil {
		return x.Template
	}
	return ""
}

func (x *CreatePromptConfigRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type PromptConfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompt        *PromptConfig          `protobuf:"bytes,1,opt,name=prompt,proto3" json:"prompt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromptConfigResponse) Reset() {
	*x = PromptConfigResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromptConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromptConfigResponse) ProtoMessage() {}

func (x *PromptConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromptConfigResponse.ProtoReflect.Descriptor instead.
func (*PromptConfigResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{30}
}

func (x *PromptConfigResponse) GetPrompt() *PromptConfig {
	if x != nil {
		return x.Prompt
	}
	return nil
}

type ListPromptConfigsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPromptConfigsRequest) Reset() {
	*x = ListPromptConfigsRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPromptConfigsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPromptConfigsRequest) ProtoMessage() {}

func (x *ListPromptConfigsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPromptConfigsRequest.ProtoReflect.Descriptor instead.
func (*ListPromptConfigsRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{31}
}

type ListPromptConfigsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompts       []*PromptConfig        `protobuf:"bytes,1,rep,name=prompts,proto3" json:"prompts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPromptConfigsResponse) Reset() {
	*x = ListPromptConfigsResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPromptConfigsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPromptConfigsResponse) ProtoMessage() {}

func (x *ListPromptConfigsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPromptConfigsResponse.ProtoReflect.Descriptor instead.
func (*ListPromptConfigsResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{32}
}

func (x *ListPromptConfigsResponse) GetPrompts() []*PromptConfig {
	if x != nil {
		return x.Prompts
	}
	return nil
}

type VocabularyTerm struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FormatId        string                 `protobuf:"bytes,2,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	RawText         string                 `protobuf:"bytes,3,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	NormalizedText  string                 `protobuf:"bytes,4,opt,name=normalized_text,json=normalizedText,proto3" json:"normalized_text,omitempty"`
	Category        string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	Status          string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	OccurrenceCount int32                  `protobuf:"varint,7,opt,name=occurrence_count,json=occurrenceCount,proto3" json:"occurrence_count,omitempty"`
	FirstSeen       string                 `protobuf:"bytes,8,opt,name=first_seen,json=firstSeen,proto3" json:"first_seen,omitempty"`
	LastSeen        string                 `protobuf:"bytes,9,opt,name=last_seen,json=lastSeen,proto3" json:"last_seen,omitempty"`
	Confidence      float64                `protobuf:"fixed64,10,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *VocabularyTerm) Reset() {
	*x = VocabularyTerm{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VocabularyTerm) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VocabularyTerm) ProtoMessage() {}

func (x *VocabularyTerm) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VocabularyTerm.ProtoReflect.Descriptor instead.
func (*VocabularyTerm) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{33}
}

func (x *VocabularyTerm) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *VocabularyTerm) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

func (x *VocabularyTerm) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *VocabularyTerm) GetNormalizedText() string {
	if x != nil {
		return x.NormalizedText
	}
	return ""
}

func (x *VocabularyTerm) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *VocabularyTerm) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *VocabularyTerm) GetOccurrenceCount() int32 {
	if x != nil {
		return x.OccurrenceCount
	}
	return 0
}

func (x *VocabularyTerm) GetFirstSeen() string {
	if x != nil {
		return x.FirstSeen
	}
	return ""
}

func (x *VocabularyTerm) GetLastSeen() string {
	if x != nil {
		return x.LastSeen
	}
	return ""
}

func (x *VocabularyTerm) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ListPendingTermsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FormatId      string                 `protobuf:"bytes,1,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingTermsRequest) Reset() {
	*x = ListPendingTermsRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingTermsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingTermsRequest) ProtoMessage() {}

func (x *ListPendingTermsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingTermsRequest.ProtoReflect.Descriptor instead.
func (*ListPendingTermsRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{34}
}

func (x *ListPendingTermsRequest) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

type ListPendingTermsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Terms         []*VocabularyTerm      `protobuf:"bytes,1,rep,name=terms,proto3" json:"terms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingTermsResponse) Reset() {
	*x = ListPendingTermsResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingTermsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingTermsResponse) ProtoMessage() {}

func (x *ListPendingTermsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingTermsResponse.ProtoReflect.Descriptor instead.
func (*ListPendingTermsResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{35}
}

func (x *ListPendingTermsResponse) GetTerms() []*VocabularyTerm {
	if x != nil {
		return x.Terms
	}
	return nil
}

type ReviewTermRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewTermRequest) Reset() {
	*x = ReviewTermRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewTermRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewTermRequest) ProtoMessage() {}

func (x *ReviewTermRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewTermRequest.ProtoReflect.Descriptor instead.
func (*ReviewTermRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{36}
}

func (x *ReviewTermRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReviewTermRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ReviewTermRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ReviewTermResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Term          *VocabularyTerm        `protobuf:"bytes,1,opt,name=term,proto3" json:"term,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewTermResponse) Reset() {
	*x = ReviewTermResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewTermResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewTermResponse) ProtoMessage() {}

func (x *ReviewTermResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewTermResponse.ProtoReflect.Descriptor instead.
func (*ReviewTermResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{37}
}

func (x *ReviewTermResponse) GetTerm() *VocabularyTerm {
	if x != nil {
		return x.Term
	}
	return nil
}

type GetTermStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FormatId      string                 `protobuf:"bytes,1,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTermStatsRequest) Reset() {
	*x = GetTermStatsRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTermStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTermStatsRequest) ProtoMessage() {}

func (x *GetTermStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTermStatsRequest.ProtoReflect.Descriptor instead.
func (*GetTermStatsRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{38}
}

func (x *GetTermStatsRequest) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

type GetTermStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	ByStatus      map[string]int32       `protobuf:"bytes,2,rep,name=by_status,json=byStatus,proto3" json:"by_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	ByCategory    map[string]int32       `protobuf:"bytes,3,rep,name=by_category,json=byCategory,proto3" json:"by_category,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTermStatsResponse) Reset() {
	*x = GetTermStatsResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTermStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTermStatsResponse) ProtoMessage() {}

func (x *GetTermStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTermStatsResponse.ProtoReflect.Descriptor instead.
func (*GetTermStatsResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{39}
}

func (x *GetTermStatsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetTermStatsResponse) GetByStatus() map[string]int32 {
	if x != nil {
		return x.ByStatus
	}
	return nil
}

func (x *GetTermStatsResponse) GetByCategory() map[string]int32 {
	if x != nil {
		return x.ByCategory
	}
	return nil
}

type ExportTermsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FormatId      string                 `protobuf:"bytes,1,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTermsRequest) Reset() {
	*x = ExportTermsRequest{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTermsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTermsRequest) ProtoMessage() {}

func (x *ExportTermsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTermsRequest.ProtoReflect.Descriptor instead.
func (*ExportTermsRequest) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{40}
}

func (x *ExportTermsRequest) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

type ExportTermsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTermsResponse) Reset() {
	*x = ExportTermsResponse{}
	mi := &file_mapping_v1_mapping_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTermsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTermsResponse) ProtoMessage() {}

func (x *ExportTermsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mapping_v1_mapping_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTermsResponse.ProtoReflect.Descriptor instead.
func (*ExportTermsResponse) Descriptor() ([]byte, []int) {
	return file_mapping_v1_mapping_proto_rawDescGZIP(), []int{41}
}

func (x *ExportTermsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_mapping_v1_mapping_proto protoreflect.FileDescriptor

const file_mapping_v1_mapping_proto_rawDesc = "" +
	"\n" +
	"\x18mapping/v1/mapping.proto\x12\n" +
	"mapping.v1\x1a\x1cgoogle/protobuf/struct.proto\"\x90\x03\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12/\n" +
	"\x06fields\x18\x02 \x01(\v2\x17.google.protobuf.StructR\x06fields\x126\n" +
	"\n" +
	"line_items\x18\x03 \x03(\v2\x17.google.protobuf.StructR\tlineItems\x12\x1f\n" +
	"\vissuer_name\x18\x04 \x01(\tR\n" +
	"issuerName\x12+\n" +
	"\x11issuer_confidence\x18\x05 \x01(\x01R\x10issuerConfidence\x12\x1f\n" +
	"\vheader_text\x18\x06 \x01(\tR\n" +
	"headerText\x12%\n" +
	"\x0elogo_signature\x18\a \x01(\tR\rlogoSignature\x12-\n" +
	"\x12layout_fingerprint\x18\b \x01(\tR\x11layoutFingerprint\x12'\n" +
	"\x0fdetected_fields\x18\t \x03(\tR\x0edetectedFields\"\xe0\x01\n" +
	"\x17ProcessDocumentResponse\x120\n" +
	"\x06record\x18\x01 \x01(\v2\x18.mapping.v1.MappedRecordR\x06record\x12/\n" +
	"\x06issuer\x18\x02 \x01(\v2\x17.mapping.v1.IssuerMatchR\x06issuer\x12/\n" +
	"\x06format\x18\x03 \x01(\v2\x17.mapping.v1.FormatMatchR\x06format\x121\n" +
	"\x05terms\x18\x04 \x01(\v2\x1b.mapping.v1.TermLearnResultR\x05terms\"4\n" +
	"\x16SubmitDocumentResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\"\xb0\x03\n" +
	"\fMappedRecord\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12'\n" +
	"\x0forganization_id\x18\x02 \x01(\tR\x0eorganizationId\x12\x1b\n" +
	"\tformat_id\x18\x03 \x01(\tR\bformatId\x12<\n" +
	"\x06fields\x18\x04 \x03(\v2$.mapping.v1.MappedRecord.FieldsEntryR\x06fields\x123\n" +
	"\n" +
	"line_items\x18\x05 \x03(\v2\x14.mapping.v1.LineItemR\tlineItems\x12,\n" +
	"\x05audit\x18\x06 \x03(\v2\x16.mapping.v1.FieldAuditR\x05audit\x12\x12\n" +
	"\x04tier\x18\a \x01(\tR\x04tier\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x121\n" +
	"\x05stats\x18\t \x01(\v2\x1b.mapping.v1.ExtractionStatsR\x05stats\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x7f\n" +
	"\bLineItem\x128\n" +
	"\x06fields\x18\x01 \x03(\v2 .mapping.v1.LineItem.FieldsEntryR\x06fields\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xd0\x01\n" +
	"\n" +
	"FieldAudit\x12!\n" +
	"\ftarget_field\x18\x01 \x01(\tR\vtargetField\x12!\n" +
	"\fsource_field\x18\x02 \x01(\tR\vsourceField\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1b\n" +
	"\traw_value\x18\x04 \x01(\tR\brawValue\x12\x14\n" +
	"\x05value\x18\x05 \x01(\tR\x05value\x12\x1b\n" +
	"\tline_item\x18\x06 \x01(\x05R\blineItem\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"\xa3\x01\n" +
	"\x0fExtractionStats\x12!\n" +
	"\ftotal_fields\x18\x01 \x01(\x05R\vtotalFields\x12#\n" +
	"\rmapped_fields\x18\x02 \x01(\x05R\fmappedFields\x12#\n" +
	"\rfailed_fields\x18\x03 \x01(\x05R\ffailedFields\x12#\n" +
	"\rprocessing_ms\x18\x04 \x01(\x03R\fprocessingMs\"\xa2\x01\n" +
	"\vIssuerMatch\x12<\n" +
	"\forganization\x18\x01 \x01(\v2\x18.mapping.v1.OrganizationR\forganization\x12\x16\n" +
	"\x06method\x18\x02 \x01(\tR\x06method\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"matched_on\x18\x04 \x01(\tR\tmatchedOn\"\xde\x01\n" +
	"\fOrganization\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\x12\x18\n" +
	"\aaliases\x18\x04 \x03(\tR\aaliases\x12!\n" +
	"\fauto_created\x18\x05 \x01(\bR\vautoCreated\x12\x1b\n" +
	"\tis_active\x18\x06 \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"y\n" +
	"\vFormatMatch\x122\n" +
	"\x06format\x18\x01 \x01(\v2\x1a.mapping.v1.DocumentFormatR\x06format\x12\x16\n" +
	"\x06method\x18\x02 \x01(\tR\x06method\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\"\x9e\x02\n" +
	"\x0eDocumentFormat\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0forganization_id\x18\x02 \x01(\tR\x0eorganizationId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12 \n" +
	"\vfingerprint\x18\x04 \x01(\tR\vfingerprint\x12!\n" +
	"\fauto_created\x18\x05 \x01(\bR\vautoCreated\x12\x1b\n" +
	"\tis_active\x18\x06 \x01(\bR\bisActive\x12\x1f\n" +
	"\vmatch_count\x18\a \x01(\x05R\n" +
	"matchCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"Y\n" +
	"\x0fTermLearnResult\x12!\n" +
	"\frecorded_new\x18\x01 \x01(\x05R\vrecordedNew\x12#\n" +
	"\rrecorded_seen\x18\x02 \x01(\x05R\frecordedSeen\"]\n" +
	"\x15ResolvePreviewRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x1b\n" +
	"\tformat_id\x18\x02 \x01(\tR\bformatId\"\x95\x01\n" +
	"\x16ResolvePreviewResponse\x121\n" +
	"\x06config\x18\x01 \x01(\v2\x19.mapping.v1.MappingConfigR\x06config\x12\x12\n" +
	"\x04tier\x18\x02 \x01(\tR\x04tier\x124\n" +
	"\aprompts\x18\x03 \x03(\v2\x1a.mapping.v1.ResolvedPromptR\aprompts\"V\n" +
	"\x0eResolvedPrompt\x120\n" +
	"\x06prompt\x18\x01 \x01(\v2\x18.mapping.v1.PromptConfigR\x06prompt\x12\x12\n" +
	"\x04tier\x18\x02 \x01(\tR\x04tier\"K\n" +
	"\x15IdentifyIssuerRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\"G\n" +
	"\x16IdentifyIssuerResponse\x12-\n" +
	"\x05match\x18\x01 \x01(\v2\x17.mapping.v1.IssuerMatchR\x05match\"\xa4\x02\n" +
	"\fFieldMapping\x12!\n" +
	"\fsource_field\x18\x01 \x01(\tR\vsourceField\x12!\n" +
	"\ftarget_field\x18\x02 \x01(\tR\vtargetField\x12\x1a\n" +
	"\brequired\x18\x03 \x01(\bR\brequired\x12(\n" +
	"\rdefault_value\x18\x04 \x01(\tH\x00R\fdefaultValue\x88\x01\x01\x12\x1c\n" +
	"\ttransform\x18\x05 \x01(\tR\ttransform\x126\n" +
	"\aoptions\x18\x06 \x01(\v2\x1c.mapping.v1.TransformOptionsR\aoptions\x12 \n" +
	"\fis_line_item\x18\a \x01(\bR\n" +
	"isLineItemB\x10\n" +
	"\x0e_default_value\"\xa8\x02\n" +
	"\x10TransformOptions\x12\x1f\n" +
	"\vdate_format\x18\x01 \x01(\tR\n" +
	"dateFormat\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\x12\x16\n" +
	"\x06locale\x18\x03 \x01(\tR\x06locale\x12!\n" +
	"\fpattern_name\x18\x04 \x01(\tR\vpatternName\x12\x1c\n" +
	"\tdelimiter\x18\x05 \x01(\tR\tdelimiter\x12\x14\n" +
	"\x05index\x18\x06 \x01(\x05R\x05index\x12\x16\n" +
	"\x06search\x18\a \x01(\tR\x06search\x12 \n" +
	"\vreplacement\x18\b \x01(\tR\vreplacement\x12\x16\n" +
	"\x06prefix\x18\t \x01(\tR\x06prefix\x12\x16\n" +
	"\x06suffix\x18\n" +
	" \x01(\tR\x06suffix\"\xc5\x02\n" +
	"\rMappingConfig\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0forganization_id\x18\x02 \x01(\tR\x0eorganizationId\x12\x1b\n" +
	"\tformat_id\x18\x03 \x01(\tR\bformatId\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x124\n" +
	"\bmappings\x18\x05 \x03(\v2\x18.mapping.v1.FieldMappingR\bmappings\x12\x1b\n" +
	"\tis_active\x18\x06 \x01(\bR\bisActive\x12\x1a\n" +
	"\bpriority\x18\a \x01(\x05R\bpriority\x12\x1d\n" +
	"\n" +
	"created_by\x18\b \x01(\tR\tcreatedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\xe7\x01\n" +
	"\x1aCreateMappingConfigRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x1b\n" +
	"\tformat_id\x18\x02 \x01(\tR\bformatId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x124\n" +
	"\bmappings\x18\x04 \x03(\v2\x18.mapping.v1.FieldMappingR\bmappings\x12\x1a\n" +
	"\bpriority\x18\x05 \x01(\x05R\bpriority\x12\x1d\n" +
	"\n" +
	"created_by\x18\x06 \x01(\tR\tcreatedBy\"W\n" +
	"\x1aImportMappingConfigRequest\x12\x1a\n" +
	"\bdocument\x18\x01 \x01(\fR\bdocument\x12\x1d\n" +
	"\n" +
	"created_by\x18\x02 \x01(\tR\tcreatedBy\"\xaf\x01\n" +
	"\x1aUpdateMappingConfigRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x124\n" +
	"\bmappings\x18\x03 \x03(\v2\x18.mapping.v1.FieldMappingR\bmappings\x12\x1a\n" +
	"\bpriority\x18\x04 \x01(\x05R\bpriority\x12\x1b\n" +
	"\tis_active\x18\x05 \x01(\bR\bisActive\"J\n" +
	"\x15MappingConfigResponse\x121\n" +
	"\x06config\x18\x01 \x01(\v2\x19.mapping.v1.MappingConfigR\x06config\"\x1b\n" +
	"\x19ListMappingConfigsRequest\"Q\n" +
	"\x1aListMappingConfigsResponse\x123\n" +
	"\aconfigs\x18\x01 \x03(\v2\x19.mapping.v1.MappingConfigR\aconfigs\")\n" +
	"\x17DeactivateConfigRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x1a\n" +
	"\x18DeactivateConfigResponse\"\xab\x02\n" +
	"\fPromptConfig\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0forganization_id\x18\x02 \x01(\tR\x0eorganizationId\x12\x1b\n" +
	"\tformat_id\x18\x03 \x01(\tR\bformatId\x12\x18\n" +
	"\apurpose\x18\x04 \x01(\tR\apurpose\x12\x1a\n" +
	"\btemplate\x18\x05 \x01(\tR\btemplate\x12\x18\n" +
	"\aversion\x18\x06 \x01(\x05R\aversion\x12\x1b\n" +
	"\tis_active\x18\a \x01(\bR\bisActive\x12\x1a\n" +
	"\bpriority\x18\b \x01(\x05R\bpriority\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\xb3\x01\n" +
	"\x19CreatePromptConfigRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x1b\n" +
	"\tformat_id\x18\x02 \x01(\tR\bformatId\x12\x18\n" +
	"\apurpose\x18\x03 \x01(\tR\apurpose\x12\x1a\n" +
	"\btemplate\x18\x04 \x01(\tR\btemplate\x12\x1a\n" +
	"\bpriority\x18\x05 \x01(\x05R\bpriority\"H\n" +
	"\x14PromptConfigResponse\x120\n" +
	"\x06prompt\x18\x01 \x01(\v2\x18.mapping.v1.PromptConfigR\x06prompt\"\x1a\n" +
	"\x18ListPromptConfigsRequest\"O\n" +
	"\x19ListPromptConfigsResponse\x122\n" +
	"\aprompts\x18\x01 \x03(\v2\x18.mapping.v1.PromptConfigR\aprompts\"\xbc\x02\n" +
	"\x0eVocabularyTerm\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tformat_id\x18\x02 \x01(\tR\bformatId\x12\x19\n" +
	"\braw_text\x18\x03 \x01(\tR\arawText\x12'\n" +
	"\x0fnormalized_text\x18\x04 \x01(\tR\x0enormalizedText\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12)\n" +
	"\x10occurrence_count\x18\a \x01(\x05R\x0foccurrenceCount\x12\x1d\n" +
	"\n" +
	"first_seen\x18\b \x01(\tR\tfirstSeen\x12\x1b\n" +
	"\tlast_seen\x18\t \x01(\tR\blastSeen\x12\x1e\n" +
	"\n" +
	"confidence\x18\n" +
	" \x01(\x01R\n" +
	"confidence\"6\n" +
	"\x17ListPendingTermsRequest\x12\x1b\n" +
	"\tformat_id\x18\x01 \x01(\tR\bformatId\"L\n" +
	"\x18ListPendingTermsResponse\x120\n" +
	"\x05terms\x18\x01 \x03(\v2\x1a.mapping.v1.VocabularyTermR\x05terms\"W\n" +
	"\x11ReviewTermRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\"D\n" +
	"\x12ReviewTermResponse\x12.\n" +
	"\x04term\x18\x01 \x01(\v2\x1a.mapping.v1.VocabularyTermR\x04term\"2\n" +
	"\x13GetTermStatsRequest\x12\x1b\n" +
	"\tformat_id\x18\x01 \x01(\tR\bformatId\"\xc8\x02\n" +
	"\x14GetTermStatsResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12K\n" +
	"\tby_status\x18\x02 \x03(\v2..mapping.v1.GetTermStatsResponse.ByStatusEntryR\bbyStatus\x12Q\n" +
	"\vby_category\x18\x03 \x03(\v20.mapping.v1.GetTermStatsResponse.ByCategoryEntryR\n" +
	"byCategory\x1a;\n" +
	"\rByStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1a=\n" +
	"\x0fByCategoryEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"1\n" +
	"\x12ExportTermsRequest\x12\x1b\n" +
	"\tformat_id\x18\x01 \x01(\tR\bformatId\")\n" +
	"\x13ExportTermsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xf8\x02\n" +
	"\x0eMappingService\x12Z\n" +
	"\x0fProcessDocument\x12\".mapping.v1.ProcessDocumentRequest\x1a#.mapping.v1.ProcessDocumentResponse\x12W\n" +
	"\x0eResolvePreview\x12!.mapping.v1.ResolvePreviewRequest\x1a\".mapping.v1.ResolvePreviewResponse\x12W\n" +
	"\x0eIdentifyIssuer\x12!.mapping.v1.IdentifyIssuerRequest\x1a\".mapping.v1.IdentifyIssuerResponse\x12X\n" +
	"\x0eSubmitDocument\x12\".mapping.v1.ProcessDocumentRequest\x1a\".mapping.v1.SubmitDocumentResponse2\xa6\x06\n" +
	"\rConfigService\x12`\n" +
	"\x13CreateMappingConfig\x12&.mapping.v1.CreateMappingConfigRequest\x1a!.mapping.v1.MappingConfigResponse\x12`\n" +
	"\x13ImportMappingConfig\x12&.mapping.v1.ImportMappingConfigRequest\x1a!.mapping.v1.MappingConfigResponse\x12`\n" +
	"\x13UpdateMappingConfig\x12&.mapping.v1.UpdateMappingConfigRequest\x1a!.mapping.v1.MappingConfigResponse\x12c\n" +
	"\x12ListMappingConfigs\x12%.mapping.v1.ListMappingConfigsRequest\x1a&.mapping.v1.ListMappingConfigsResponse\x12d\n" +
	"\x17DeactivateMappingConfig\x12#.mapping.v1.DeactivateConfigRequest\x1a$.mapping.v1.DeactivateConfigResponse\x12]\n" +
	"\x12CreatePromptConfig\x12%.mapping.v1.CreatePromptConfigRequest\x1a .mapping.v1.PromptConfigResponse\x12`\n" +
	"\x11ListPromptConfigs\x12$.mapping.v1.ListPromptConfigsRequest\x1a%.mapping.v1.ListPromptConfigsResponse\x12c\n" +
	"\x16DeactivatePromptConfig\x12#.mapping.v1.DeactivateConfigRequest\x1a$.mapping.v1.DeactivateConfigResponse2\xdc\x02\n" +
	"\vTermService\x12]\n" +
	"\x10ListPendingTerms\x12#.mapping.v1.ListPendingTermsRequest\x1a$.mapping.v1.ListPendingTermsResponse\x12K\n" +
	"\n" +
	"ReviewTerm\x12\x1d.mapping.v1.ReviewTermRequest\x1a\x1e.mapping.v1.ReviewTermResponse\x12Q\n" +
	"\fGetTermStats\x12\x1f.mapping.v1.GetTermStatsRequest\x1a .mapping.v1.GetTermStatsResponse\x12N\n" +
	"\vExportTerms\x12\x1e.mapping.v1.ExportTermsRequest\x1a\x1f.mapping.v1.ExportTermsResponseBMZKgithub.com/laitim2001/ai-document-extraction/gen/proto/mapping/v1;mappingv1b\x06proto3"

var (
	file_mapping_v1_mapping_proto_rawDescOnce sync.Once
	file_mapping_v1_mapping_proto_rawDescData []byte
)

func file_mapping_v1_mapping_proto_rawDescGZIP() []byte {
	file_mapping_v1_mapping_proto_rawDescOnce.Do(func() {
		file_mapping_v1_mapping_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mapping_v1_mapping_proto_rawDesc), len(file_mapping_v1_mapping_proto_rawDesc)))
	})
	return file_mapping_v1_mapping_proto_rawDescData
}

var file_mapping_v1_mapping_proto_msgTypes = make([]protoimpl.MessageInfo, 46)
var file_mapping_v1_mapping_proto_goTypes = []any{
	(*ProcessDocumentRequest)(nil),     // 0: mapping.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),    // 1: mapping.v1.ProcessDocumentResponse
	(*SubmitDocumentResponse)(nil),     // 2: mapping.v1.SubmitDocumentResponse
	(*MappedRecord)(nil),               // 3: mapping.v1.MappedRecord
	(*LineItem)(nil),                   // 4: mapping.v1.LineItem
	(*FieldAudit)(nil),                 // 5: mapping.v1.FieldAudit
	(*ExtractionStats)(nil),            // 6: mapping.v1.ExtractionStats
	(*IssuerMatch)(nil),                // 7: mapping.v1.IssuerMatch
	(*Organization)(nil),               // 8: mapping.v1.Organization
	(*FormatMatch)(nil),                // 9: mapping.v1.FormatMatch
	(*DocumentFormat)(nil),             // 10: mapping.v1.DocumentFormat
	(*TermLearnResult)(nil),            // 11: mapping.v1.TermLearnResult
	(*ResolvePreviewRequest)(nil),      // 12: mapping.v1.ResolvePreviewRequest
	(*ResolvePreviewResponse)(nil),     // 13: mapping.v1.ResolvePreviewResponse
	(*ResolvedPrompt)(nil),             // 14: mapping.v1.ResolvedPrompt
	(*IdentifyIssuerRequest)(nil),      // 15: mapping.v1.IdentifyIssuerRequest
	(*IdentifyIssuerResponse)(nil),     // 16: mapping.v1.IdentifyIssuerResponse
	(*FieldMapping)(nil),               // 17: mapping.v1.FieldMapping
	(*TransformOptions)(nil),           // 18: mapping.v1.TransformOptions
	(*MappingConfig)(nil),              // 19: mapping.v1.MappingConfig
	(*CreateMappingConfigRequest)(nil), // 20: mapping.v1.CreateMappingConfigRequest
	(*ImportMappingConfigRequest)(nil), // 21: mapping.v1.ImportMappingConfigRequest
	(*UpdateMappingConfigRequest)(nil), // 22: mapping.v1.UpdateMappingConfigRequest
	(*MappingConfigResponse)(nil),      // 23: mapping.v1.MappingConfigResponse
	(*ListMappingConfigsRequest)(nil),  // 24: mapping.v1.ListMappingConfigsRequest
	(*ListMappingConfigsResponse)(nil), // 25: mapping.v1.ListMappingConfigsResponse
	(*DeactivateConfigRequest)(nil),    // 26: mapping.v1.DeactivateConfigRequest
	(*DeactivateConfigResponse)(nil),   // 27: mapping.v1.DeactivateConfigResponse
	(*PromptConfig)(nil),               // 28: mapping.v1.PromptConfig
	(*CreatePromptConfigRequest)(nil),  // 29: mapping.v1.CreatePromptConfigRequest
	(*PromptConfigResponse)(nil),       // 30: mapping.v1.PromptConfigResponse
	(*ListPromptConfigsRequest)(nil),   // 31: mapping.v1.ListPromptConfigsRequest
	(*ListPromptConfigsResponse)(nil),  // 32: mapping.v1.ListPromptConfigsResponse
	(*VocabularyTerm)(nil),             // 33: mapping.v1.VocabularyTerm
	(*ListPendingTermsRequest)(nil),    // 34: mapping.v1.ListPendingTermsRequest
	(*ListPendingTermsResponse)(nil),   // 35: mapping.v1.ListPendingTermsResponse
	(*ReviewTermRequest)(nil),          // 36: mapping.v1.ReviewTermRequest
	(*ReviewTermResponse)(nil),         // 37: mapping.v1.ReviewTermResponse
	(*GetTermStatsRequest)(nil),        // 38: mapping.v1.GetTermStatsRequest
	(*GetTermStatsResponse)(nil),       // 39: mapping.v1.GetTermStatsResponse
	(*ExportTermsRequest)(nil),         // 40: mapping.v1.ExportTermsRequest
	(*ExportTermsResponse)(nil),        // 41: mapping.v1.ExportTermsResponse
	nil,                                // 42: mapping.v1.MappedRecord.FieldsEntry
	nil,                                // 43: mapping.v1.LineItem.FieldsEntry
	nil,                                // 44: mapping.v1.GetTermStatsResponse.ByStatusEntry
	nil,                                // 45: mapping.v1.GetTermStatsResponse.ByCategoryEntry
	(*structpb.Struct)(nil),            // 46: google.protobuf.Struct
}
var file_mapping_v1_mapping_proto_depIdxs = []int32{
	46, // 0: mapping.v1.ProcessDocumentRequest.fields:type_name -> google.protobuf.Struct
	46, // 1: mapping.v1.ProcessDocumentRequest.line_items:type_name -> google.protobuf.Struct
	3,  // 2: mapping.v1.ProcessDocumentResponse.record:type_name -> mapping.v1.MappedRecord
	7,  // 3: mapping.v1.ProcessDocumentResponse.issuer:type_name -> mapping.v1.IssuerMatch
	9,  // 4: mapping.v1.ProcessDocumentResponse.format:type_name -> mapping.v1.FormatMatch
	11, // 5: mapping.v1.ProcessDocumentResponse.terms:type_name -> mapping.v1.TermLearnResult
	42, // 6: mapping.v1.MappedRecord.fields:type_name -> mapping.v1.MappedRecord.FieldsEntry
	4,  // 7: mapping.v1.MappedRecord.line_items:type_name -> mapping.v1.LineItem
	5,  // 8: mapping.v1.MappedRecord.audit:type_name -> mapping.v1.FieldAudit
	6,  // 9: mapping.v1.MappedRecord.stats:type_name -> mapping.v1.ExtractionStats
	43, // 10: mapping.v1.LineItem.fields:type_name -> mapping.v1.LineItem.FieldsEntry
	8,  // 11: mapping.v1.IssuerMatch.organization:type_name -> mapping.v1.Organization
	10, // 12: mapping.v1.FormatMatch.format:type_name -> mapping.v1.DocumentFormat
	19, // 13: mapping.v1.ResolvePreviewResponse.config:type_name -> mapping.v1.MappingConfig
	14, // 14: mapping.v1.ResolvePreviewResponse.prompts:type_name -> mapping.v1.ResolvedPrompt
	28, // 15: mapping.v1.ResolvedPrompt.prompt:type_name -> mapping.v1.PromptConfig
	7,  // 16: mapping.v1.IdentifyIssuerResponse.match:type_name -> mapping.v1.IssuerMatch
	18, // 17: mapping.v1.FieldMapping.options:type_name -> mapping.v1.TransformOptions
	17, // 18: mapping.v1.MappingConfig.mappings:type_name -> mapping.v1.FieldMapping
	17, // 19: mapping.v1.CreateMappingConfigRequest.mappings:type_name -> mapping.v1.FieldMapping
	17, // 20: mapping.v1.UpdateMappingConfigRequest.mappings:type_name -> mapping.v1.FieldMapping
	19, // 21: mapping.v1.MappingConfigResponse.config:type_name -> mapping.v1.MappingConfig
	19, // 22: mapping.v1.ListMappingConfigsResponse.configs:type_name -> mapping.v1.MappingConfig
	28, // 23: mapping.v1.PromptConfigResponse.prompt:type_name -> mapping.v1.PromptConfig
	28, // 24: mapping.v1.ListPromptConfigsResponse.prompts:type_name -> mapping.v1.PromptConfig
	33, // 25: mapping.v1.ListPendingTermsResponse.terms:type_name -> mapping.v1.VocabularyTerm
	33, // 26: mapping.v1.ReviewTermResponse.term:type_name -> mapping.v1.VocabularyTerm
	44, // 27: mapping.v1.GetTermStatsResponse.by_status:type_name -> mapping.v1.GetTermStatsResponse.ByStatusEntry
	45, // 28: mapping.v1.GetTermStatsResponse.by_category:type_name -> mapping.v1.GetTermStatsResponse.ByCategoryEntry
	0,  // 29: mapping.v1.MappingService.ProcessDocument:input_type -> mapping.v1.ProcessDocumentRequest
	12, // 30: mapping.v1.MappingService.ResolvePreview:input_type -> mapping.v1.ResolvePreviewRequest
	15, // 31: mapping.v1.MappingService.IdentifyIssuer:input_type -> mapping.v1.IdentifyIssuerRequest
	0,  // 32: mapping.v1.MappingService.SubmitDocument:input_type -> mapping.v1.ProcessDocumentRequest
	20, // 33: mapping.v1.ConfigService.CreateMappingConfig:input_type -> mapping.v1.CreateMappingConfigRequest
	21, // 34: mapping.v1.ConfigService.ImportMappingConfig:input_type -> mapping.v1.ImportMappingConfigRequest
	22, // 35: mapping.v1.ConfigService.UpdateMappingConfig:input_type -> mapping.v1.UpdateMappingConfigRequest
	24, // 36: mapping.v1.ConfigService.ListMappingConfigs:input_type -> mapping.v1.ListMappingConfigsRequest
	26, // 37: mapping.v1.ConfigService.DeactivateMappingConfig:input_type -> mapping.v1.DeactivateConfigRequest
	29, // 38: mapping.v1.ConfigService.CreatePromptConfig:input_type -> mapping.v1.CreatePromptConfigRequest
	31, // 39: mapping.v1.ConfigService.ListPromptConfigs:input_type -> mapping.v1.ListPromptConfigsRequest
	26, // 40: mapping.v1.ConfigService.DeactivatePromptConfig:input_type -> mapping.v1.DeactivateConfigRequest
	34, // 41: mapping.v1.TermService.ListPendingTerms:input_type -> mapping.v1.ListPendingTermsRequest
	36, // 42: mapping.v1.TermService.ReviewTerm:input_type -> mapping.v1.ReviewTermRequest
	38, // 43: mapping.v1.TermService.GetTermStats:input_type -> mapping.v1.GetTermStatsRequest
	40, // 44: mapping.v1.TermService.ExportTerms:input_type -> mapping.v1.ExportTermsRequest
	1,  // 45: mapping.v1.MappingService.ProcessDocument:output_type -> mapping.v1.ProcessDocumentResponse
	13, // 46: mapping.v1.MappingService.ResolvePreview:output_type -> mapping.v1.ResolvePreviewResponse
	16, // 47: mapping.v1.MappingService.IdentifyIssuer:output_type -> mapping.v1.IdentifyIssuerResponse
	2,  // 48: mapping.v1.MappingService.SubmitDocument:output_type -> mapping.v1.SubmitDocumentResponse
	23, // 49: mapping.v1.ConfigService.CreateMappingConfig:output_type -> mapping.v1.MappingConfigResponse
	23, // 50: mapping.v1.ConfigService.ImportMappingConfig:output_type -> mapping.v1.MappingConfigResponse
	23, // 51: mapping.v1.ConfigService.UpdateMappingConfig:output_type -> mapping.v1.MappingConfigResponse
	25, // 52: mapping.v1.ConfigService.ListMappingConfigs:output_type -> mapping.v1.ListMappingConfigsResponse
	27, // 53: mapping.v1.ConfigService.DeactivateMappingConfig:output_type -> mapping.v1.DeactivateConfigResponse
	30, // 54: mapping.v1.ConfigService.CreatePromptConfig:output_type -> mapping.v1.PromptConfigResponse
	32, // 55: mapping.v1.ConfigService.ListPromptConfigs:output_type -> mapping.v1.ListPromptConfigsResponse
	27, // 56: mapping.v1.ConfigService.DeactivatePromptConfig:output_type -> mapping.v1.DeactivateConfigResponse
	35, // 57: mapping.v1.TermService.ListPendingTerms:output_type -> mapping.v1.ListPendingTermsResponse
	37, // 58: mapping.v1.TermService.ReviewTerm:output_type -> mapping.v1.ReviewTermResponse
	39, // 59: mapping.v1.TermService.GetTermStats:output_type -> mapping.v1.GetTermStatsResponse
	41, // 60: mapping.v1.TermService.ExportTerms:output_type -> mapping.v1.ExportTermsResponse
	45, // [45:61] is the sub-list for method output_type
	29, // [29:45] is the sub-list for method input_type
	29, // [29:29] is the sub-list for extension type_name
	29, // [29:29] is the sub-list for extension extendee
	0,  // [0:29] is the sub-list for field type_name
}

func init() { file_mapping_v1_mapping_proto_init() }
func file_mapping_v1_mapping_proto_init() {
	if File_mapping_v1_mapping_proto != nil {
		return
	}
	file_mapping_v1_mapping_proto_msgTypes[17].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mapping_v1_mapping_proto_rawDesc), len(file_mapping_v1_mapping_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   46,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_mapping_v1_mapping_proto_goTypes,
		DependencyIndexes: file_mapping_v1_mapping_proto_depIdxs,
		MessageInfos:      file_mapping_v1_mapping_proto_msgTypes,
	}.Build()
	File_mapping_v1_mapping_proto = out.File
	file_mapping_v1_mapping_proto_goTypes = nil
	file_mapping_v1_mapping_proto_depIdxs = nil
}
