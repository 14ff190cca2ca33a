// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: shredder/v1/shredder.proto

package shredderv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type ProcessBlobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Container     string                 `protobuf:"bytes,1,opt,name=container,proto3" json:"container,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBlobRequest) Reset() {
	*x = ProcessBlobRequest{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBlobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBlobRequest) ProtoMessage() {}

func (x *ProcessBlobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBlobRequest.ProtoReflect.Descriptor instead.
func (*ProcessBlobRequest) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessBlobRequest) GetContainer() string {
	if x != nil {
		return x.Container
	}
	return ""
}

func (x *ProcessBlobRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ProcessBlobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBlobResponse) Reset() {
	*x = ProcessBlobResponse{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBlobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBlobResponse) ProtoMessage() {}

func (x *ProcessBlobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBlobResponse.ProtoReflect.Descriptor instead.
func (*ProcessBlobResponse) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{1}
}

type TrainRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	DocumentFormat    string                 `protobuf:"bytes,1,opt,name=document_format,json=documentFormat,proto3" json:"document_format,omitempty"`
	BlobSasUrl        string                 `protobuf:"bytes,2,opt,name=blob_sas_url,json=blobSasUrl,proto3" json:"blob_sas_url,omitempty"`
	BlobFolderName    string                 `protobuf:"bytes,3,opt,name=blob_folder_name,json=blobFolderName,proto3" json:"blob_folder_name,omitempty"`
	IncludeSubFolders bool                   `protobuf:"varint,4,opt,name=include_sub_folders,json=includeSubFolders,proto3" json:"include_sub_folders,omitempty"`
	UseLabelFile      bool                   `protobuf:"varint,5,opt,name=use_label_file,json=useLabelFile,proto3" json:"use_label_file,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *TrainRequest) Reset() {
	*x = TrainRequest{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrainRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrainRequest) ProtoMessage() {}

func (x *TrainRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrainRequest.ProtoReflect.Descriptor instead.
func (*TrainRequest) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{2}
}

func (x *TrainRequest) GetDocumentFormat() string {
	if x != nil {
		return x.DocumentFormat
	}
	return ""
}

func (x *TrainRequest) GetBlobSasUrl() string {
	if x != nil {
		return x.BlobSasUrl
	}
	return ""
}

func (x *TrainRequest) GetBlobFolderName() string {
	if x != nil {
		return x.BlobFolderName
	}
	return ""
}

func (x *TrainRequest) GetIncludeSubFolders() bool {
	if x != nil {
		return x.IncludeSubFolders
	}
	return false
}

func (x *TrainRequest) GetUseLabelFile() bool {
	if x != nil {
		return x.UseLabelFile
	}
	return false
}

type TrainResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	ModelId              string                 `protobuf:"bytes,1,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	ModelVersion         int32                  `protobuf:"varint,2,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	AverageModelAccuracy string                 `protobuf:"bytes,3,opt,name=average_model_accuracy,json=averageModelAccuracy,proto3" json:"average_model_accuracy,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *TrainResponse) Reset() {
	*x = TrainResponse{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrainResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrainResponse) ProtoMessage() {}

func (x *TrainResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrainResponse.ProtoReflect.Descriptor instead.
func (*TrainResponse) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{3}
}

func (x *TrainResponse) GetModelId() string {
	if x != nil {
		return x.ModelId
	}
	return ""
}

func (x *TrainResponse) GetModelVersion() int32 {
	if x != nil {
		return x.ModelVersion
	}
	return 0
}

func (x *TrainResponse) GetAverageModelAccuracy() string {
	if x != nil {
		return x.AverageModelAccuracy
	}
	return ""
}

type ListDocumentsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentFormat string                 `protobuf:"bytes,1,opt,name=document_format,json=documentFormat,proto3" json:"document_format,omitempty"` // empty means all formats
	FromDate       string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`                   // YYYY-MM-DD, optional
	ToDate         string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`                         // YYYY-MM-DD, optional
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{4}
}

func (x *ListDocumentsRequest) GetDocumentFormat() string {
	if x != nil {
		return x.DocumentFormat
	}
	return ""
}

func (x *ListDocumentsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListDocumentsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type Document struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileName            string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	DocumentFormat      string                 `protobuf:"bytes,3,opt,name=document_format,json=documentFormat,proto3" json:"document_format,omitempty"`
	InvoiceNumber       string                 `protobuf:"bytes,4,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	PoNumber            string                 `protobuf:"bytes,5,opt,name=po_number,json=poNumber,proto3" json:"po_number,omitempty"`
	TaxDate             string                 `protobuf:"bytes,6,opt,name=tax_date,json=taxDate,proto3" json:"tax_date,omitempty"`
	TaxPeriod           string                 `protobuf:"bytes,7,opt,name=tax_period,json=taxPeriod,proto3" json:"tax_period,omitempty"`
	NetTotal            string                 `protobuf:"bytes,8,opt,name=net_total,json=netTotal,proto3" json:"net_total,omitempty"`
	VatTotal            string                 `protobuf:"bytes,9,opt,name=vat_total,json=vatTotal,proto3" json:"vat_total,omitempty"`
	GrossTotal          string                 `protobuf:"bytes,10,opt,name=gross_total,json=grossTotal,proto3" json:"gross_total,omitempty"`
	IsValid             bool                   `protobuf:"varint,11,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
	TerminalErrorCount  int32                  `protobuf:"varint,12,opt,name=terminal_error_count,json=terminalErrorCount,proto3" json:"terminal_error_count,omitempty"`
	WarningErrorCount   int32                  `protobuf:"varint,13,opt,name=warning_error_count,json=warningErrorCount,proto3" json:"warning_error_count,omitempty"`
	UniqueRunIdentifier string                 `protobuf:"bytes,14,opt,name=unique_run_identifier,json=uniqueRunIdentifier,proto3" json:"unique_run_identifier,omitempty"`
	ShreddingUtcTime    string                 `protobuf:"bytes,15,opt,name=shredding_utc_time,json=shreddingUtcTime,proto3" json:"shredding_utc_time,omitempty"`
	LineItemCount       int32                  `protobuf:"varint,16,opt,name=line_item_count,json=lineItemCount,proto3" json:"line_item_count,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{5}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetDocumentFormat() string {
	if x != nil {
		return x.DocumentFormat
	}
	return ""
}

func (x *Document) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Document) GetPoNumber() string {
	if x != nil {
		return x.PoNumber
	}
	return ""
}

func (x *Document) GetTaxDate() string {
	if x != nil {
		return x.TaxDate
	}
	return ""
}

func (x *Document) GetTaxPeriod() string {
	if x != nil {
		return x.TaxPeriod
	}
	return ""
}

func (x *Document) GetNetTotal() string {
	if x != nil {
		return x.NetTotal
	}
	return ""
}

func (x *Document) GetVatTotal() string {
	if x != nil {
		return x.VatTotal
	}
	return ""
}

func (x *Document) GetGrossTotal() string {
	if x != nil {
		return x.GrossTotal
	}
	return ""
}

func (x *Document) GetIsValid() bool {
	if x != nil {
		return x.IsValid
	}
	return false
}

func (x *Document) GetTerminalErrorCount() int32 {
	if x != nil {
		return x.TerminalErrorCount
	}
	return 0
}

func (x *Document) GetWarningErrorCount() int32 {
	if x != nil {
		return x.WarningErrorCount
	}
	return 0
}

func (x *Document) GetUniqueRunIdentifier() string {
	if x != nil {
		return x.UniqueRunIdentifier
	}
	return ""
}

func (x *Document) GetShreddingUtcTime() string {
	if x != nil {
		return x.ShreddingUtcTime
	}
	return ""
}

func (x *Document) GetLineItemCount() int32 {
	if x != nil {
		return x.LineItemCount
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ExportDocumentsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentFormat string                 `protobuf:"bytes,1,opt,name=document_format,json=documentFormat,proto3" json:"document_format,omitempty"`
	FromDate       string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate         string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{7}
}

func (x *ExportDocumentsRequest) GetDocumentFormat() string {
	if x != nil {
		return x.DocumentFormat
	}
	return ""
}

func (x *ExportDocumentsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportDocumentsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_shredder_v1_shredder_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shredder_v1_shredder_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_shredder_v1_shredder_proto_rawDescGZIP(), []int{8}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_shredder_v1_shredder_proto protoreflect.FileDescriptor

const file_shredder_v1_shredder_proto_rawDesc = "" +
	"\n" +
	"\x1ashredder/v1/shredder.proto\x12\vshredder.v1\"F\n" +
	"\x12ProcessBlobRequest\x12\x1c\n" +
	"\tcontainer\x18\x01 \x01(\tR\tcontainer\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\x15\n" +
	"\x13ProcessBlobResponse\"\xd9\x01\n" +
	"\fTrainRequest\x12'\n" +
	"\x0fdocument_format\x18\x01 \x01(\tR\x0edocumentFormat\x12 \n" +
	"\fblob_sas_url\x18\x02 \x01(\tR\n" +
	"blobSasUrl\x12(\n" +
	"\x10blob_folder_name\x18\x03 \x01(\tR\x0eblobFolderName\x12.\n" +
	"\x13include_sub_folders\x18\x04 \x01(\bR\x11includeSubFolders\x12$\n" +
	"\x0euse_label_file\x18\x05 \x01(\bR\fuseLabelFile\"\x85\x01\n" +
	"\rTrainResponse\x12\x19\n" +
	"\bmodel_id\x18\x01 \x01(\tR\amodelId\x12#\n" +
	"\rmodel_version\x18\x02 \x01(\x05R\fmodelVersion\x124\n" +
	"\x16average_model_accuracy\x18\x03 \x01(\tR\x14averageModelAccuracy\"u\n" +
	"\x14ListDocumentsRequest\x12'\n" +
	"\x0fdocument_format\x18\x01 \x01(\tR\x0edocumentFormat\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"\xc0\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12'\n" +
	"\x0fdocument_format\x18\x03 \x01(\tR\x0edocumentFormat\x12%\n" +
	"\x0einvoice_number\x18\x04 \x01(\tR\rinvoiceNumber\x12\x1b\n" +
	"\tpo_number\x18\x05 \x01(\tR\bpoNumber\x12\x19\n" +
	"\btax_date\x18\x06 \x01(\tR\ataxDate\x12\x1d\n" +
	"\n" +
	"tax_period\x18\a \x01(\tR\ttaxPeriod\x12\x1b\n" +
	"\tnet_total\x18\b \x01(\tR\bnetTotal\x12\x1b\n" +
	"\tvat_total\x18\t \x01(\tR\bvatTotal\x12\x1f\n" +
	"\vgross_total\x18\n" +
	" \x01(\tR\n" +
	"grossTotal\x12\x19\n" +
	"\bis_valid\x18\v \x01(\bR\aisValid\x120\n" +
	"\x14terminal_error_count\x18\f \x01(\x05R\x12terminalErrorCount\x12.\n" +
	"\x13warning_error_count\x18\r \x01(\x05R\x11warningErrorCount\x122\n" +
	"\x15unique_run_identifier\x18\x0e \x01(\tR\x13uniqueRunIdentifier\x12,\n" +
	"\x12shredding_utc_time\x18\x0f \x01(\tR\x10shreddingUtcTime\x12&\n" +
	"\x0fline_item_count\x18\x10 \x01(\x05R\rlineItemCount\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.shredder.v1.DocumentR\tdocuments\"w\n" +
	"\x16ExportDocumentsRequest\x12'\n" +
	"\x0fdocument_format\x18\x01 \x01(\tR\x0edocumentFormat\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xd9\x02\n" +
	"\x0fShredderService\x12P\n" +
	"\vProcessBlob\x12\x1f.shredder.v1.ProcessBlobRequest\x1a .shredder.v1.ProcessBlobResponse\x12>\n" +
	"\x05Train\x12\x19.shredder.v1.TrainRequest\x1a\x1a.shredder.v1.TrainResponse\x12V\n" +
	"\rListDocuments\x12!.shredder.v1.ListDocumentsRequest\x1a\".shredder.v1.ListDocumentsResponse\x12\\\n" +
	"\x0fExportDocuments\x12#.shredder.v1.ExportDocumentsRequest\x1a$.shredder.v1.ExportDocumentsResponseBAZ?github.com/formshred/formshred/gen/proto/shredder/v1;shredderv1b\x06proto3"

var (
	file_shredder_v1_shredder_proto_rawDescOnce sync.Once
	file_shredder_v1_shredder_proto_rawDescData []byte
)

func file_shredder_v1_shredder_proto_rawDescGZIP() []byte {
	file_shredder_v1_shredder_proto_rawDescOnce.Do(func() {
		file_shredder_v1_shredder_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_shredder_v1_shredder_proto_rawDesc), len(file_shredder_v1_shredder_proto_rawDesc)))
	})
	return file_shredder_v1_shredder_proto_rawDescData
}

var file_shredder_v1_shredder_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_shredder_v1_shredder_proto_goTypes = []any{
	(*ProcessBlobRequest)(nil),      // 0: shredder.v1.ProcessBlobRequest
	(*ProcessBlobResponse)(nil),     // 1: shredder.v1.ProcessBlobResponse
	(*TrainRequest)(nil),            // 2: shredder.v1.TrainRequest
	(*TrainResponse)(nil),           // 3: shredder.v1.TrainResponse
	(*ListDocumentsRequest)(nil),    // 4: shredder.v1.ListDocumentsRequest
	(*Document)(nil),                // 5: shredder.v1.Document
	(*ListDocumentsResponse)(nil),   // 6: shredder.v1.ListDocumentsResponse
	(*ExportDocumentsRequest)(nil),  // 7: shredder.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 8: shredder.v1.ExportDocumentsResponse
}
var file_shredder_v1_shredder_proto_depIdxs = []int32{
	5, // 0: shredder.v1.ListDocumentsResponse.documents:type_name -> shredder.v1.Document
	0, // 1: shredder.v1.ShredderService.ProcessBlob:input_type -> shredder.v1.ProcessBlobRequest
	2, // 2: shredder.v1.ShredderService.Train:input_type -> shredder.v1.TrainRequest
	4, // 3: shredder.v1.ShredderService.ListDocuments:input_type -> shredder.v1.ListDocumentsRequest
	7, // 4: shredder.v1.ShredderService.ExportDocuments:input_type -> shredder.v1.ExportDocumentsRequest
	1, // 5: shredder.v1.ShredderService.ProcessBlob:output_type -> shredder.v1.ProcessBlobResponse
	3, // 6: shredder.v1.ShredderService.Train:output_type -> shredder.v1.TrainResponse
	6, // 7: shredder.v1.ShredderService.ListDocuments:output_type -> shredder.v1.ListDocumentsResponse
	8, // 8: shredder.v1.ShredderService.ExportDocuments:output_type -> shredder.v1.ExportDocumentsResponse
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_shredder_v1_shredder_proto_init() }
func file_shredder_v1_shredder_proto_init() {
	if File_shredder_v1_shredder_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_shredder_v1_shredder_proto_rawDesc), len(file_shredder_v1_shredder_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_shredder_v1_shredder_proto_goTypes,
		DependencyIndexes: file_shredder_v1_shredder_proto_depIdxs,
		MessageInfos:      file_shredder_v1_shredder_proto_msgTypes,
	}.Build()
	File_shredder_v1_shredder_proto = out.File
	file_shredder_v1_shredder_proto_goTypes = nil
	file_shredder_v1_shredder_proto_depIdxs = nil
}
