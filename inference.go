package blazepose

/*
#include "rknn_api.h"
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"fmt"
	"sync"
	"unsafe"

	"gocv.io/x/gocv"
)

// Inference runs the model on the given images, one per model input.  The
// returned Outputs reference C memory and must be released with Free
func (r *Runtime) Inference(mats []gocv.Mat) (*Outputs, error) {

	if len(mats) == 0 {
		return nil, fmt.Errorf("no input images given")
	}

	cInputs := make([]C.rknn_input, len(mats))

	for idx := range mats {

		mat := mats[idx]

		// make mat continuous, the clone is kept until the inputs are set
		if !mat.IsContinuous() {
			clone := mat.Clone()
			defer clone.Close()
			mat = clone
		}

		var (
			buf  unsafe.Pointer
			size int
			typ  TensorType
		)

		if r.inputTypeFloat32 {
			data, err := mat.DataPtrFloat32()

			if err != nil {
				return nil, fmt.Errorf("error getting data pointer to Mat: %w", err)
			}

			buf, size, typ = unsafe.Pointer(&data[0]), len(data)*4, TensorFloat32

		} else {
			data, err := mat.DataPtrUint8()

			if err != nil {
				return nil, fmt.Errorf("error getting data pointer to Mat: %w", err)
			}

			buf, size, typ = unsafe.Pointer(&data[0]), len(data), TensorUint8
		}

		cInputs[idx].index = C.uint32_t(idx)
		cInputs[idx].buf = buf
		cInputs[idx].size = C.uint32_t(size)
		cInputs[idx].pass_through = 0
		cInputs[idx]._type = C.rknn_tensor_type(typ)
		cInputs[idx].fmt = C.rknn_tensor_format(TensorNHWC)
	}

	if ret := C.rknn_inputs_set(r.ctx, C.uint32_t(len(cInputs)), &cInputs[0]); ret != C.RKNN_SUCC {
		return nil, fmt.Errorf("error setting inputs: %w", callError("rknn_inputs_set", ret))
	}

	if ret := C.rknn_run(r.ctx, nil); ret < 0 {
		return nil, fmt.Errorf("error running model: %w", callError("rknn_run", ret))
	}

	return r.getOutputs()
}

// Outputs holds the model outputs of one inference converted to float32
type Outputs struct {
	// Output is the data of each output tensor.  FP32 outputs point to C
	// memory and are only valid until Free is called
	Output   [][]float32
	cOutputs []C.rknn_output
	// freed indicates if the cOutputs have been released
	freed bool
	sync.Mutex
	rt *Runtime
}

// getOutputs wraps C.rknn_outputs_get.  FP16 outputs are fetched raw and
// converted in Go, all others are converted to float32 by the runtime
func (r *Runtime) getOutputs() (*Outputs, error) {

	n := len(r.outputAttrs)

	outputs := &Outputs{
		Output:   make([][]float32, n),
		cOutputs: make([]C.rknn_output, n),
		rt:       r,
	}

	for i := range outputs.cOutputs {
		outputs.cOutputs[i].index = C.uint32_t(i)
		outputs.cOutputs[i].want_float = 1

		if r.outputAttrs[i].Type == TensorFloat16 {
			outputs.cOutputs[i].want_float = 0
		}
	}

	ret := C.rknn_outputs_get(r.ctx, C.uint32_t(n), &outputs.cOutputs[0], nil)

	if ret < 0 {
		return nil, callError("rknn_outputs_get", ret)
	}

	for i, cOut := range outputs.cOutputs {

		if cOut.want_float == 0 {
			raw := unsafe.Slice((*uint16)(cOut.buf), cOut.size/2)
			outputs.Output[i] = float16ToFloat32(raw)
			continue
		}

		outputs.Output[i] = unsafe.Slice((*float32)(cOut.buf), cOut.size/4)
	}

	return outputs, nil
}

// Copy returns the output data copied into Go memory
func (o *Outputs) Copy() [][]float32 {

	out := make([][]float32, len(o.Output))

	for i, buf := range o.Output {
		out[i] = append([]float32(nil), buf...)
	}

	return out
}

// Free releases the C memory holding the outputs.  It is safe to call more
// than once
func (o *Outputs) Free() error {
	o.Lock()
	defer o.Unlock()

	if o.freed {
		return nil
	}

	o.freed = true

	ret := C.rknn_outputs_release(o.rt.ctx, C.uint32_t(len(o.cOutputs)), &o.cOutputs[0])

	if ret != C.RKNN_SUCC {
		return callError("rknn_outputs_release", ret)
	}

	return nil
}
