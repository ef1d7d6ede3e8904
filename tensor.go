package blazepose

/*
#include "rknn_api.h"
*/
import "C"
import (
	"fmt"
	"strings"
	"unsafe"
)

// TensorFormat wraps C.rknn_tensor_format
type TensorFormat int

const (
	TensorNCHW      TensorFormat = C.RKNN_TENSOR_NCHW
	TensorNHWC      TensorFormat = C.RKNN_TENSOR_NHWC
	TensorNC1HWC2   TensorFormat = C.RKNN_TENSOR_NC1HWC2
	TensorUndefined TensorFormat = C.RKNN_TENSOR_UNDEFINED
)

// String returns the name of the TensorFormat
func (t TensorFormat) String() string {
	switch t {
	case TensorNCHW:
		return "NCHW"
	case TensorNHWC:
		return "NHWC"
	case TensorNC1HWC2:
		return "NC1HWC2"
	default:
		return "UNDEFINED"
	}
}

// TensorType wraps C.rknn_tensor_type
type TensorType int

const (
	TensorFloat32 TensorType = C.RKNN_TENSOR_FLOAT32
	TensorFloat16 TensorType = C.RKNN_TENSOR_FLOAT16
	TensorInt8    TensorType = C.RKNN_TENSOR_INT8
	TensorUint8   TensorType = C.RKNN_TENSOR_UINT8
	TensorInt16   TensorType = C.RKNN_TENSOR_INT16
	TensorInt32   TensorType = C.RKNN_TENSOR_INT32
)

// String returns the name of the TensorType
func (t TensorType) String() string {
	switch t {
	case TensorFloat32:
		return "FP32"
	case TensorFloat16:
		return "FP16"
	case TensorInt8:
		return "INT8"
	case TensorUint8:
		return "UINT8"
	case TensorInt16:
		return "INT16"
	case TensorInt32:
		return "INT32"
	default:
		return "UNKNOWN"
	}
}

// maxDims is the maximum number of tensor dimensions
const maxDims = C.RKNN_MAX_DIMS

// TensorAttr holds the attributes of a model input or output tensor
type TensorAttr struct {
	Index  uint32
	NDims  uint32
	Dims   [maxDims]uint32
	Name   string
	NElems uint32
	Size   uint32
	Fmt    TensorFormat
	Type   TensorType
	ZP     int32
	Scale  float32
}

// String returns the TensorAttr formatted for display
func (a TensorAttr) String() string {

	dims := make([]string, a.NDims)

	for i := range dims {
		dims[i] = fmt.Sprint(a.Dims[i])
	}

	return fmt.Sprintf("index=%d, name=%s, dims=[%s], n_elems=%d, size=%d, fmt=%s, type=%s, zp=%d, scale=%f",
		a.Index, a.Name, strings.Join(dims, ", "), a.NElems, a.Size, a.Fmt, a.Type, a.ZP, a.Scale)
}

// SquareSize returns the side length of a square image input tensor, or 0
// if the tensor is not a square image
func (a TensorAttr) SquareSize() int {

	if a.NDims != 4 {
		return 0
	}

	// NCHW by default
	h, w := a.Dims[2], a.Dims[3]

	if a.Fmt == TensorNHWC {
		h, w = a.Dims[1], a.Dims[2]
	}

	if h != w {
		return 0
	}

	return int(h)
}

// newTensorAttr converts a C.rknn_tensor_attr to a TensorAttr
func newTensorAttr(cAttr *C.rknn_tensor_attr) TensorAttr {

	name := C.GoStringN(&cAttr.name[0], C.RKNN_MAX_NAME_LEN)

	if end := strings.IndexByte(name, 0); end != -1 {
		name = name[:end]
	}

	return TensorAttr{
		Index:  uint32(cAttr.index),
		NDims:  uint32(cAttr.n_dims),
		Dims:   *(*[maxDims]uint32)(unsafe.Pointer(&cAttr.dims)),
		Name:   name,
		NElems: uint32(cAttr.n_elems),
		Size:   uint32(cAttr.size),
		Fmt:    TensorFormat(cAttr.fmt),
		Type:   TensorType(cAttr._type),
		ZP:     int32(cAttr.zp),
		Scale:  float32(cAttr.scale),
	}
}

// queryTensors queries the attributes of n input or output tensors
func (r *Runtime) queryTensors(cmd C.rknn_query_cmd, n uint32) ([]TensorAttr, error) {

	attrs := make([]TensorAttr, n)

	for i := uint32(0); i < n; i++ {

		var cAttr C.rknn_tensor_attr
		cAttr.index = C.uint32_t(i)

		ret := C.rknn_query(r.ctx, cmd, unsafe.Pointer(&cAttr), C.uint(unsafe.Sizeof(cAttr)))

		if ret != C.RKNN_SUCC {
			return nil, callError("rknn_query", ret)
		}

		attrs[i] = newTensorAttr(&cAttr)
	}

	return attrs, nil
}
