package blazepose

/*
#include "rknn_api.h"
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"os"
	"unsafe"
)

// CoreMask wraps C.rknn_core_mask and selects the NPU cores a model runs on
type CoreMask int

// NPUCoreAuto lets the runtime pick an idle core.  NPUSkipSetCore leaves the
// core mask unset for SoCs such as the RK3566 which do not support it
const (
	NPUCoreAuto    CoreMask = C.RKNN_NPU_CORE_AUTO
	NPUCore0       CoreMask = C.RKNN_NPU_CORE_0
	NPUCore1       CoreMask = C.RKNN_NPU_CORE_1
	NPUCore2       CoreMask = C.RKNN_NPU_CORE_2
	NPUCore01      CoreMask = C.RKNN_NPU_CORE_0_1
	NPUCore012     CoreMask = C.RKNN_NPU_CORE_0_1_2
	NPUSkipSetCore CoreMask = 9999
)

// ParseCoreMask returns the CoreMask for a configuration name such as "auto",
// "0" or "012"
func ParseCoreMask(name string) (CoreMask, error) {

	switch name {
	case "", "auto":
		return NPUCoreAuto, nil
	case "0":
		return NPUCore0, nil
	case "1":
		return NPUCore1, nil
	case "2":
		return NPUCore2, nil
	case "01":
		return NPUCore01, nil
	case "012":
		return NPUCore012, nil
	case "skip":
		return NPUSkipSetCore, nil
	}

	return NPUCoreAuto, fmt.Errorf("unknown NPU core mask %q", name)
}

// ErrorCodes are the return codes of the C API
type ErrorCodes int

const (
	Success              ErrorCodes = C.RKNN_SUCC
	ErrFail              ErrorCodes = C.RKNN_ERR_FAIL
	ErrTimeout           ErrorCodes = C.RKNN_ERR_TIMEOUT
	ErrDeviceUnavailable ErrorCodes = C.RKNN_ERR_DEVICE_UNAVAILABLE
	ErrMallocFail        ErrorCodes = C.RKNN_ERR_MALLOC_FAIL
	ErrParamInvalid      ErrorCodes = C.RKNN_ERR_PARAM_INVALID
	ErrModelInvalid      ErrorCodes = C.RKNN_ERR_MODEL_INVALID
	ErrCtxInvalid        ErrorCodes = C.RKNN_ERR_CTX_INVALID
	ErrInputInvalid      ErrorCodes = C.RKNN_ERR_INPUT_INVALID
	ErrOutputInvalid     ErrorCodes = C.RKNN_ERR_OUTPUT_INVALID
	ErrDeviceMismatch    ErrorCodes = C.RKNN_ERR_DEVICE_UNMATCH
	ErrPlatformMismatch  ErrorCodes = C.RKNN_ERR_TARGET_PLATFORM_UNMATCH
)

// String returns a readable description of the error code
func (e ErrorCodes) String() string {
	switch e {
	case Success:
		return "execution successful"
	case ErrFail:
		return "execution failed"
	case ErrTimeout:
		return "execution timed out"
	case ErrDeviceUnavailable:
		return "device is unavailable"
	case ErrMallocFail:
		return "C memory allocation failed"
	case ErrParamInvalid:
		return "parameter is invalid"
	case ErrModelInvalid:
		return "model file is invalid"
	case ErrCtxInvalid:
		return "context is invalid"
	case ErrInputInvalid:
		return "input is invalid"
	case ErrOutputInvalid:
		return "output is invalid"
	case ErrDeviceMismatch:
		return "device mismatch, please update rknn sdk and npu driver/firmware"
	case ErrPlatformMismatch:
		return "model target platform is not compatible with the current platform"
	default:
		return fmt.Sprintf("unknown error code %d", e)
	}
}

// callError formats a failed C API call
func callError(fn string, ret C.int) error {
	return fmt.Errorf("C.%s failed with code %d, error: %s", fn, int(ret), ErrorCodes(ret).String())
}

// Runtime is a loaded RKNN model and its C context.  A Runtime must only be
// used from one goroutine at a time
type Runtime struct {
	ctx         C.rknn_context
	ioNum       IONumber
	inputAttrs  []TensorAttr
	outputAttrs []TensorAttr
	// inputTypeFloat32 passes Mat data to the NPU as float32 instead of uint8
	inputTypeFloat32 bool
}

// NewRuntime loads the RKNN compiled model file and pins it to the given NPU
// cores
func NewRuntime(modelFile string, core CoreMask) (*Runtime, error) {

	r := &Runtime{}

	if err := r.init(modelFile); err != nil {
		return nil, err
	}

	if core != NPUSkipSetCore {
		if ret := C.rknn_set_core_mask(r.ctx, C.rknn_core_mask(core)); ret != C.RKNN_SUCC {
			r.Close()
			return nil, callError("rknn_set_core_mask", ret)
		}
	}

	var err error

	if r.ioNum, err = r.QueryModelIONumber(); err != nil {
		r.Close()
		return nil, err
	}

	if r.inputAttrs, err = r.queryTensors(C.RKNN_QUERY_INPUT_ATTR, r.ioNum.NumberInput); err != nil {
		r.Close()
		return nil, err
	}

	if r.outputAttrs, err = r.queryTensors(C.RKNN_QUERY_OUTPUT_ATTR, r.ioNum.NumberOutput); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// init wraps C.rknn_init
func (r *Runtime) init(modelFile string) error {

	// check file exists in Go, before passing to C
	info, err := os.Stat(modelFile)

	if err != nil {
		return fmt.Errorf("model file does not exist at %s, error: %w", modelFile, err)
	}

	if info.IsDir() {
		return fmt.Errorf("model file %s is a directory", modelFile)
	}

	cModelFile := C.CString(modelFile)
	defer C.free(unsafe.Pointer(cModelFile))

	if ret := C.rknn_init(&r.ctx, unsafe.Pointer(cModelFile), 0, 0, nil); ret != C.RKNN_SUCC {
		return callError("rknn_init", ret)
	}

	return nil
}

// Close unloads the model and releases the C context
func (r *Runtime) Close() error {

	if ret := C.rknn_destroy(r.ctx); ret != C.RKNN_SUCC {
		return callError("rknn_destroy", ret)
	}

	return nil
}

// SetInputTypeFloat32 passes Mat data to the NPU as float32, for models
// compiled without uint8 input quantization
func (r *Runtime) SetInputTypeFloat32(val bool) {
	r.inputTypeFloat32 = val
}

// SDKVersion holds the RKNN API and driver versions
type SDKVersion struct {
	DriverVersion string
	APIVersion    string
}

// SDKVersion queries the RKNN API and driver versions
func (r *Runtime) SDKVersion() (SDKVersion, error) {

	var cSdkVer C.rknn_sdk_version

	ret := C.rknn_query(r.ctx, C.RKNN_QUERY_SDK_VERSION,
		unsafe.Pointer(&cSdkVer), C.uint(C.sizeof_rknn_sdk_version))

	if ret != C.RKNN_SUCC {
		return SDKVersion{}, callError("rknn_query", ret)
	}

	return SDKVersion{
		DriverVersion: C.GoString(&(cSdkVer.drv_version[0])),
		APIVersion:    C.GoString(&(cSdkVer.api_version[0])),
	}, nil
}

// InputAttrs returns the loaded model's input tensor attributes
func (r *Runtime) InputAttrs() []TensorAttr {
	return r.inputAttrs
}

// OutputAttrs returns the loaded model's output tensor attributes
func (r *Runtime) OutputAttrs() []TensorAttr {
	return r.outputAttrs
}
