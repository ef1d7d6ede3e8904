/*
Package blazepose runs BlazePose human pose estimation models on the Rockchip
NPU.

The root package wraps the RKNN Toolkit2 C runtime and exposes loaded models
through a Registry so each model file is only initialized once.  The pipeline
subpackage sequences the pose detector and landmark models for each frame,
with decoding of model outputs in postprocess and image preparation in
preprocess.  Results can be drawn onto frames with the render subpackage.

See the example subdirectory for a runnable program.
*/
package blazepose
