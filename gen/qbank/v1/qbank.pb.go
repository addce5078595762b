// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: qbank/v1/qbank.proto

package qbankv1

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

type ExtractDocumentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Subject key: english, mathematics or general_knowledge.
	Subject string `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	// Raw document text, as produced by a PDF-to-text step upstream.
	Text          string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractDocumentRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *ExtractDocumentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ExtractionReport struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Attempted uint32                 `protobuf:"varint,1,opt,name=attempted,proto3" json:"attempted,omitempty"`
	Accepted  uint32                 `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Rejected  uint32                 `protobuf:"varint,3,opt,name=rejected,proto3" json:"rejected,omitempty"`
	// Rejection reason -> count.
	RejectionReasons map[string]uint32 `protobuf:"bytes,4,rep,name=rejection_reasons,json=rejectionReasons,proto3" json:"rejection_reasons,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	StoreFailures    uint32            `protobuf:"varint,5,opt,name=store_failures,json=storeFailures,proto3" json:"store_failures,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExtractionReport) Reset() {
	*x = ExtractionReport{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionReport) ProtoMessage() {}

func (x *ExtractionReport) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionReport.ProtoReflect.Descriptor instead.
func (*ExtractionReport) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractionReport) GetAttempted() uint32 {
	if x != nil {
		return x.Attempted
	}
	return 0
}

func (x *ExtractionReport) GetAccepted() uint32 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

func (x *ExtractionReport) GetRejected() uint32 {
	if x != nil {
		return x.Rejected
	}
	return 0
}

func (x *ExtractionReport) GetRejectionReasons() map[string]uint32 {
	if x != nil {
		return x.RejectionReasons
	}
	return nil
}

func (x *ExtractionReport) GetStoreFailures() uint32 {
	if x != nil {
		return x.StoreFailures
	}
	return 0
}

type ExtractDocumentResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Report *ExtractionReport      `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	// Non-empty when some accepted questions failed to store.
	Error         string `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractDocumentResponse) GetReport() *ExtractionReport {
	if x != nil {
		return x.Report
	}
	return nil
}

func (x *ExtractDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

var File_qbank_v1_qbank_proto protoreflect.FileDescriptor

const file_qbank_v1_qbank_proto_rawDesc = "" +
	"\n" +
	"\x14qbank/v1/qbank.proto\x12\bqbank.v1\"F\n" +
	"\x16ExtractDocumentRequest\x12\x18\n" +
	"\asubject\x18\x01 \x01(\tR\asubject\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"\xb3\x02\n" +
	"\x10ExtractionReport\x12\x1c\n" +
	"\tattempted\x18\x01 \x01(\rR\tattempted\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\rR\baccepted\x12\x1a\n" +
	"\brejected\x18\x03 \x01(\rR\brejected\x12]\n" +
	"\x11rejection_reasons\x18\x04 \x03(\v20.qbank.v1.ExtractionReport.RejectionReasonsEntryR\x10rejectionReasons\x12%\n" +
	"\x0estore_failures\x18\x05 \x01(\rR\rstoreFailures\x1aC\n" +
	"\x15RejectionReasonsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\rR\x05value:\x028\x01\"c\n" +
	"\x17ExtractDocumentResponse\x122\n" +
	"\x06report\x18\x01 \x01(\v2\x1a.qbank.v1.ExtractionReportR\x06report\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error2k\n" +
	"\x11ExtractionService\x12V\n" +
	"\x0fExtractDocument\x12 .qbank.v1.ExtractDocumentRequest\x1a!.qbank.v1.ExtractDocumentResponseB9Z7github.com/edtech-ng/question-bank/gen/qbank/v1;qbankv1b\x06proto3"

var (
	file_qbank_v1_qbank_proto_rawDescOnce sync.Once
	file_qbank_v1_qbank_proto_rawDescData []byte
)

func file_qbank_v1_qbank_proto_rawDescGZIP() []byte {
	file_qbank_v1_qbank_proto_rawDescOnce.Do(func() {
		file_qbank_v1_qbank_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_qbank_v1_qbank_proto_rawDesc), len(file_qbank_v1_qbank_proto_rawDesc)))
	})
	return file_qbank_v1_qbank_proto_rawDescData
}

var file_qbank_v1_qbank_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_qbank_v1_qbank_proto_goTypes = []any{
	(*ExtractDocumentRequest)(nil),  // 0: qbank.v1.ExtractDocumentRequest
	(*ExtractionReport)(nil),        // 1: qbank.v1.ExtractionReport
	(*ExtractDocumentResponse)(nil), // 2: qbank.v1.ExtractDocumentResponse
	nil,                             // 3: qbank.v1.ExtractionReport.RejectionReasonsEntry
}
var file_qbank_v1_qbank_proto_depIdxs = []int32{
	3, // 0: qbank.v1.ExtractionReport.rejection_reasons:type_name -> qbank.v1.ExtractionReport.RejectionReasonsEntry
	1, // 1: qbank.v1.ExtractDocumentResponse.report:type_name -> qbank.v1.ExtractionReport
	0, // 2: qbank.v1.ExtractionService.ExtractDocument:input_type -> qbank.v1.ExtractDocumentRequest
	2, // 3: qbank.v1.ExtractionService.ExtractDocument:output_type -> qbank.v1.ExtractDocumentResponse
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_qbank_v1_qbank_proto_init() }
func file_qbank_v1_qbank_proto_init() {
	if File_qbank_v1_qbank_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_qbank_v1_qbank_proto_rawDesc), len(file_qbank_v1_qbank_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_qbank_v1_qbank_proto_goTypes,
		DependencyIndexes: file_qbank_v1_qbank_proto_depIdxs,
		MessageInfos:      file_qbank_v1_qbank_proto_msgTypes,
	}.Build()
	File_qbank_v1_qbank_proto = out.File
	file_qbank_v1_qbank_proto_goTypes = nil
	file_qbank_v1_qbank_proto_depIdxs = nil
}
