package blazepose

/*
#include "rknn_api.h"
*/
import "C"
import (
	"unsafe"
)

// IONumber is the number of model input and output tensors
type IONumber struct {
	NumberInput  uint32
	NumberOutput uint32
}

// QueryModelIONumber queries the number of input and output tensors of the
// model
func (r *Runtime) QueryModelIONumber() (IONumber, error) {

	var cIONum C.rknn_input_output_num

	ret := C.rknn_query(r.ctx, C.RKNN_QUERY_IN_OUT_NUM,
		unsafe.Pointer(&cIONum), C.uint(C.sizeof_rknn_input_output_num))

	if ret != C.RKNN_SUCC {
		return IONumber{}, callError("rknn_query", ret)
	}

	return IONumber{
		NumberInput:  uint32(cIONum.n_input),
		NumberOutput: uint32(cIONum.n_output),
	}, nil
}
