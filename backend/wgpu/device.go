//go:build !nogpu

// Package wgpu provides a GPU graphics device using gogpu/wgpu compute
// shaders.
//
// Textures live in GPU storage buffers as packed RGBA8 pixels. Draw calls
// are accumulated per frame and dispatched as one command submission on
// Flush, so a frame costs one submission wait regardless of draw count.
//
// Importing this package registers the device with the backend registry:
//
//	import _ "github.com/gogpu/arcade/backend/wgpu"
package wgpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/arcade/backend"
	"github.com/gogpu/arcade/graphics"
	"github.com/gogpu/arcade/internal/logging"
)

// Device errors.
var (
	// ErrNoAdapter is returned when no GPU adapter is available.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")

	// ErrInvalidTextureSize is returned when texture dimensions are not
	// positive or exceed the device limit.
	ErrInvalidTextureSize = errors.New("wgpu: invalid texture size")

	// ErrPixelSizeMismatch is returned when a pixel slice does not match
	// the texture dimensions.
	ErrPixelSizeMismatch = errors.New("wgpu: pixel data size does not match texture")

	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("wgpu: texture has been destroyed")

	// ErrForeignTexture is returned when a texture from another device
	// implementation is passed in.
	ErrForeignTexture = errors.New("wgpu: texture was not created by this device")

	// ErrDeviceClosed is returned when operating on a closed device.
	ErrDeviceClosed = errors.New("wgpu: device has been closed")
)

const (
	maxTextureSize = 16384

	// gpuTimeout bounds every submission wait.
	gpuTimeout = 5 * time.Second

	blitParamsSize  = 4*4 + 3*16 + 4*4
	clearParamsSize = 4*4 + 16
)

func init() {
	backend.Register(backend.DeviceWGPU, func(width, height int) (graphics.Device, error) {
		return New(width, height)
	})
}

// Device is a GPU graphics device backed by gogpu/wgpu.
//
// Device is not safe for concurrent use: the framework drives it from the
// frame goroutine only.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	external bool // shared device from a provider; don't destroy on Close

	blitShader     hal.ShaderModule
	blitBindLayout hal.BindGroupLayout
	blitPipeLayout hal.PipelineLayout
	blitPipeline   hal.ComputePipeline

	clearShader     hal.ShaderModule
	clearBindLayout hal.BindGroupLayout
	clearPipeLayout hal.PipelineLayout
	clearPipeline   hal.ComputePipeline

	backbuffer *gpuTexture
	target     *gpuTexture

	pending []drawOp
	closed  bool
}

var _ graphics.Device = (*Device)(nil)

// drawOp is one recorded Clear or DrawTexture call. The target is captured
// at record time, so rebinding the render target mid-frame keeps earlier
// draws pointed at the right image.
type drawOp struct {
	clear  bool
	target *gpuTexture
	src    *gpuTexture // nil for clear
	params []byte
}

// New creates a GPU device with a backbuffer of the given size. It picks
// the first discrete or integrated adapter exposed by the Vulkan backend.
func New(width, height int) (*Device, error) {
	b, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	d := &Device{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
	}
	if err := d.setup(width, height); err != nil {
		d.device.Destroy()
		instance.Destroy()
		return nil, err
	}
	logging.Logger().Info("GPU device initialized", "adapter", selected.Info.Name)
	return d, nil
}

// setup creates the pipelines and the backbuffer.
func (d *Device) setup(width, height int) error {
	if err := d.createPipelines(); err != nil {
		return err
	}
	bb, err := d.createTexture(width, height, graphics.FilterModeNearest, nil)
	if err != nil {
		d.destroyPipelines()
		return fmt.Errorf("wgpu: create backbuffer: %w", err)
	}
	d.backbuffer = bb
	d.target = bb
	return nil
}

func (d *Device) createPipelines() error {
	blitShader, err := compileShader(d.device, "arcade_blit", blitShaderWGSL)
	if err != nil {
		return err
	}
	d.blitShader = blitShader

	blitBindLayout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "arcade_blit_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create blit bind group layout: %w", err)
	}
	d.blitBindLayout = blitBindLayout

	blitPipeLayout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "arcade_blit_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{d.blitBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create blit pipeline layout: %w", err)
	}
	d.blitPipeLayout = blitPipeLayout

	blitPipeline, err := d.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "arcade_blit_pipeline", Layout: d.blitPipeLayout,
		Compute: hal.ComputeState{Module: d.blitShader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create blit pipeline: %w", err)
	}
	d.blitPipeline = blitPipeline

	clearShader, err := compileShader(d.device, "arcade_clear", clearShaderWGSL)
	if err != nil {
		return err
	}
	d.clearShader = clearShader

	clearBindLayout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "arcade_clear_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create clear bind group layout: %w", err)
	}
	d.clearBindLayout = clearBindLayout

	clearPipeLayout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "arcade_clear_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{d.clearBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create clear pipeline layout: %w", err)
	}
	d.clearPipeLayout = clearPipeLayout

	clearPipeline, err := d.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "arcade_clear_pipeline", Layout: d.clearPipeLayout,
		Compute: hal.ComputeState{Module: d.clearShader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create clear pipeline: %w", err)
	}
	d.clearPipeline = clearPipeline

	return nil
}

func (d *Device) destroyPipelines() {
	if d.device == nil {
		return
	}
	if d.blitPipeline != nil {
		d.device.DestroyComputePipeline(d.blitPipeline)
	}
	if d.blitPipeLayout != nil {
		d.device.DestroyPipelineLayout(d.blitPipeLayout)
	}
	if d.blitBindLayout != nil {
		d.device.DestroyBindGroupLayout(d.blitBindLayout)
	}
	if d.blitShader != nil {
		d.device.DestroyShaderModule(d.blitShader)
	}
	if d.clearPipeline != nil {
		d.device.DestroyComputePipeline(d.clearPipeline)
	}
	if d.clearPipeLayout != nil {
		d.device.DestroyPipelineLayout(d.clearPipeLayout)
	}
	if d.clearBindLayout != nil {
		d.device.DestroyBindGroupLayout(d.clearBindLayout)
	}
	if d.clearShader != nil {
		d.device.DestroyShaderModule(d.clearShader)
	}
}

// gpuTexture is the wgpu TextureResource: a storage buffer of packed
// RGBA8 pixels.
type gpuTexture struct {
	dev       *Device
	buf       hal.Buffer
	width     int
	height    int
	filter    graphics.FilterMode
	destroyed bool
}

func (t *gpuTexture) Filter() graphics.FilterMode {
	return t.filter
}

func (t *gpuTexture) SetFilter(mode graphics.FilterMode) {
	t.filter = mode
}

func (t *gpuTexture) Pixels() ([]byte, error) {
	if t.destroyed {
		return nil, ErrTextureDestroyed
	}
	return t.dev.readPixels(t)
}

func (t *gpuTexture) Replace(pix []byte) error {
	if t.destroyed {
		return ErrTextureDestroyed
	}
	if len(pix) != t.width*t.height*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrPixelSizeMismatch, len(pix), t.width*t.height*4)
	}
	// Draws recorded against the old contents must land first.
	if err := t.dev.Flush(); err != nil {
		return err
	}
	if err := t.dev.queue.WriteBuffer(t.buf, 0, pix); err != nil {
		return fmt.Errorf("wgpu: upload texture pixels: %w", err)
	}
	return nil
}

func (t *gpuTexture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.dev.device.DestroyBuffer(t.buf)
}

// gpuFramebuffer wraps a texture as a render target.
type gpuFramebuffer struct {
	tex *gpuTexture
}

func (f *gpuFramebuffer) Texture() graphics.TextureResource {
	return f.tex
}

func (f *gpuFramebuffer) Destroy() {}

func (d *Device) createTexture(width, height int, filter graphics.FilterMode, pix []byte) (*gpuTexture, error) {
	if width <= 0 || height <= 0 || width > maxTextureSize || height > maxTextureSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	size := uint64(width) * uint64(height) * 4
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "arcade_texture", Size: size,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture buffer: %w", err)
	}

	if pix == nil {
		pix = make([]byte, size)
	} else if uint64(len(pix)) != size {
		d.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrPixelSizeMismatch, len(pix), size)
	}
	if err := d.queue.WriteBuffer(buf, 0, pix); err != nil {
		d.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("wgpu: upload texture pixels: %w", err)
	}

	return &gpuTexture{dev: d, buf: buf, width: width, height: height, filter: filter}, nil
}

// CreateTexture allocates a texture. pix may be nil for a transparent
// texture.
func (d *Device) CreateTexture(width, height int, filter graphics.FilterMode, pix []byte) (graphics.TextureResource, error) {
	if d.closed {
		return nil, ErrDeviceClosed
	}
	return d.createTexture(width, height, filter, pix)
}

// NewFramebuffer wraps a texture as a render-target attachment. The
// compute pipeline needs no depth buffer; the flag is accepted for
// contract compatibility.
func (d *Device) NewFramebuffer(tex graphics.TextureResource, depthBuffer bool) (graphics.FramebufferResource, error) {
	_ = depthBuffer
	if d.closed {
		return nil, ErrDeviceClosed
	}
	t, ok := tex.(*gpuTexture)
	if !ok {
		return nil, ErrForeignTexture
	}
	if t.destroyed {
		return nil, ErrTextureDestroyed
	}
	return &gpuFramebuffer{tex: t}, nil
}

// SetRenderTarget selects where subsequent draws land; nil selects the
// backbuffer.
func (d *Device) SetRenderTarget(fb graphics.FramebufferResource) {
	if fb == nil {
		d.target = d.backbuffer
		return
	}
	if f, ok := fb.(*gpuFramebuffer); ok {
		d.target = f.tex
	}
}

// Clear records a clear of the current render target.
func (d *Device) Clear(c graphics.Color) {
	params := make([]byte, clearParamsSize)
	binary.LittleEndian.PutUint32(params[0:], uint32(d.target.width))
	binary.LittleEndian.PutUint32(params[4:], uint32(d.target.height))
	putFloat32(params[16:], c.R*c.A)
	putFloat32(params[20:], c.G*c.A)
	putFloat32(params[24:], c.B*c.A)
	putFloat32(params[28:], c.A)
	d.pending = append(d.pending, drawOp{clear: true, target: d.target, params: params})
}

// DrawTexture records a draw of tex into the current render target. The
// shader walks destination pixels, so the transform is inverted here once
// on the CPU.
func (d *Device) DrawTexture(tex graphics.TextureResource, transform graphics.Mat32, tint graphics.Color) {
	t, ok := tex.(*gpuTexture)
	if !ok || t.destroyed {
		return
	}

	inv := transform.Invert()
	params := make([]byte, blitParamsSize)
	binary.LittleEndian.PutUint32(params[0:], uint32(d.target.width))
	binary.LittleEndian.PutUint32(params[4:], uint32(d.target.height))
	binary.LittleEndian.PutUint32(params[8:], uint32(t.width))
	binary.LittleEndian.PutUint32(params[12:], uint32(t.height))
	putFloat32(params[16:], inv.A)
	putFloat32(params[20:], inv.B)
	putFloat32(params[24:], inv.C)
	putFloat32(params[32:], inv.D)
	putFloat32(params[36:], inv.E)
	putFloat32(params[40:], inv.F)
	putFloat32(params[48:], tint.R)
	putFloat32(params[52:], tint.G)
	putFloat32(params[56:], tint.B)
	putFloat32(params[60:], tint.A)
	var filter uint32
	if t.filter == graphics.FilterModeLinear {
		filter = 1
	}
	binary.LittleEndian.PutUint32(params[64:], filter)

	d.pending = append(d.pending, drawOp{target: d.target, src: t, params: params})
}

// Flush dispatches all recorded operations in one command submission:
// one compute pass per operation, with implicit storage buffer barriers
// between passes preserving issue order.
func (d *Device) Flush() error {
	if d.closed {
		return ErrDeviceClosed
	}
	if len(d.pending) == 0 {
		return nil
	}
	ops := d.pending
	d.pending = d.pending[:0]

	uniformBufs := make([]hal.Buffer, 0, len(ops))
	bindGroups := make([]hal.BindGroup, 0, len(ops))
	defer func() {
		for _, bg := range bindGroups {
			d.device.DestroyBindGroup(bg)
		}
		for _, ub := range uniformBufs {
			d.device.DestroyBuffer(ub)
		}
	}()

	for _, op := range ops {
		ub, err := d.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "arcade_params", Size: uint64(len(op.params)),
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("wgpu: create uniform buffer: %w", err)
		}
		uniformBufs = append(uniformBufs, ub)
		if err := d.queue.WriteBuffer(ub, 0, op.params); err != nil {
			return fmt.Errorf("wgpu: write params: %w", err)
		}

		bg, err := d.createBindGroup(op, ub)
		if err != nil {
			return err
		}
		bindGroups = append(bindGroups, bg)
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "arcade_frame_encoder"})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("arcade_frame"); err != nil {
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	for i, op := range ops {
		pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "arcade_draw"})
		if op.clear {
			pass.SetPipeline(d.clearPipeline)
		} else {
			pass.SetPipeline(d.blitPipeline)
		}
		pass.SetBindGroup(0, bindGroups[i], nil)
		w := uint32(op.target.width)
		h := uint32(op.target.height)
		pass.Dispatch((w+7)/8, (h+7)/8, 1)
		pass.End()
	}

	return d.submit(encoder)
}

func (d *Device) createBindGroup(op drawOp, ub hal.Buffer) (hal.BindGroup, error) {
	paramSize := uint64(len(op.params))
	dstSize := uint64(op.target.width) * uint64(op.target.height) * 4

	if op.clear {
		bg, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label: "arcade_clear_bind", Layout: d.clearBindLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: paramSize}},
				{Binding: 1, Resource: gputypes.BufferBinding{Buffer: op.target.buf.NativeHandle(), Offset: 0, Size: dstSize}},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("wgpu: create clear bind group: %w", err)
		}
		return bg, nil
	}

	srcSize := uint64(op.src.width) * uint64(op.src.height) * 4
	bg, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "arcade_blit_bind", Layout: d.blitBindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: paramSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: op.src.buf.NativeHandle(), Offset: 0, Size: srcSize}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: op.target.buf.NativeHandle(), Offset: 0, Size: dstSize}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create blit bind group: %w", err)
	}
	return bg, nil
}

// submit finishes encoding, submits, and waits for the submission to
// complete. The HAL tracks completion internally; the queue reports the
// highest finished submission index through PollCompleted.
func (d *Device) submit(encoder hal.CommandEncoder) error {
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	idx, err := d.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	return d.waitSubmission(idx)
}

// waitSubmission polls until the GPU has finished the given submission,
// bounded by gpuTimeout so a wedged driver surfaces as an error instead
// of a hang.
func (d *Device) waitSubmission(idx uint64) error {
	deadline := time.Now().Add(gpuTimeout)
	for d.queue.PollCompleted() < idx {
		if time.Now().After(deadline) {
			return fmt.Errorf("wgpu: submission %d did not complete within %s", idx, gpuTimeout)
		}
		time.Sleep(100 * time.Microsecond)
	}
	return nil
}

// readPixels copies a texture's buffer into a staging buffer and reads it
// back. Pending draws are flushed first so the copy sees current
// contents.
func (d *Device) readPixels(t *gpuTexture) ([]byte, error) {
	if err := d.Flush(); err != nil {
		return nil, err
	}

	size := uint64(t.width) * uint64(t.height) * 4
	staging, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "arcade_staging", Size: size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create staging buffer: %w", err)
	}
	defer d.device.DestroyBuffer(staging)

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "arcade_readback_encoder"})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create readback encoder: %w", err)
	}
	if err := encoder.BeginEncoding("arcade_readback"); err != nil {
		return nil, fmt.Errorf("wgpu: begin readback encoding: %w", err)
	}
	encoder.CopyBufferToBuffer(t.buf, staging, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: size},
	})
	if err := d.submit(encoder); err != nil {
		return nil, err
	}

	// The submission has completed, so mapping the staging buffer is safe.
	mapping, err := d.device.MapBuffer(staging, 0, size)
	if err != nil {
		return nil, fmt.Errorf("wgpu: map staging buffer: %w", err)
	}
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(mapping.Ptr), size))
	if err := d.device.UnmapBuffer(staging); err != nil {
		return nil, fmt.Errorf("wgpu: unmap staging buffer: %w", err)
	}
	return out, nil
}

// BackbufferPixels returns a copy of the backbuffer contents.
func (d *Device) BackbufferPixels() ([]byte, error) {
	if d.closed {
		return nil, ErrDeviceClosed
	}
	return d.readPixels(d.backbuffer)
}

// ResizeBackbuffer replaces the backbuffer with a new one, discarding
// contents. Recorded draws against the old backbuffer are flushed first.
func (d *Device) ResizeBackbuffer(width, height int) error {
	if d.closed {
		return ErrDeviceClosed
	}
	if err := d.Flush(); err != nil {
		return err
	}
	bb, err := d.createTexture(width, height, graphics.FilterModeNearest, nil)
	if err != nil {
		return err
	}
	wasTarget := d.target == d.backbuffer
	d.backbuffer.Destroy()
	d.backbuffer = bb
	if wasTarget {
		d.target = bb
	}
	return nil
}

// MaxTextureSize returns the largest supported texture dimension.
func (d *Device) MaxTextureSize() int {
	return maxTextureSize
}

// Close releases pipelines and, for devices created with New, the
// underlying HAL device and instance. Shared devices from a provider are
// left running.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.pending = nil
	if d.device != nil {
		// Resources must not be destroyed while the GPU is using them.
		if err := d.device.WaitIdle(); err != nil {
			logging.Logger().Warn("wait for GPU idle failed", "error", err)
		}
	}
	if d.backbuffer != nil {
		d.backbuffer.Destroy()
		d.backbuffer = nil
	}
	d.target = nil
	d.destroyPipelines()
	if !d.external {
		if d.device != nil {
			d.device.Destroy()
		}
		if d.instance != nil {
			d.instance.Destroy()
		}
	}
	d.device = nil
	d.instance = nil
	d.queue = nil
	return nil
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
