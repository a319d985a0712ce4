//go:build opencl

package luminance

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

const torusKernelSource = `__kernel void torus_frame(
    const int width,
    const int height,
    const float angle,
    __global uchar* out)
{
    int idx = get_global_id(0);
    if (idx >= width * height) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    float half_fov = tan(0.5f);
    float aspect = (float)width / (float)height;
    float u = (2.0f * ((float)x + 0.5f) / (float)width - 1.0f) * half_fov * aspect;
    float v = (1.0f - 2.0f * ((float)y + 0.5f) / (float)height) * half_fov;
    float3 o = (float3)(0.0f, 0.0f, 3.2f);
    float3 d = normalize((float3)(u, v, -1.0f));

    float sa = sin(-angle), ca = cos(-angle);
    float st = sin(-0.65f), ct = cos(-0.65f);
    o = (float3)(o.x * ca + o.z * sa, o.y, -o.x * sa + o.z * ca);
    o = (float3)(o.x, o.y * ct - o.z * st, o.y * st + o.z * ct);
    d = (float3)(d.x * ca + d.z * sa, d.y, -d.x * sa + d.z * ca);
    d = (float3)(d.x, d.y * ct - d.z * st, d.y * st + d.z * ct);

    uchar4 px = (uchar4)(0x05, 0x08, 0x12, 0xFF);
    float dist = 0.0f;
    for (int i = 0; i < 64; i++) {
        float3 p = o + d * dist;
        float qx = length(p.xz) - 1.0f;
        float sd = length((float2)(qx, p.y)) - 0.38f;
        if (sd < 1e-3f) {
            float3 ring = normalize((float3)(p.x, 0.0f, p.z));
            float3 n = normalize(p - ring);
            float st2 = sin(0.65f), ct2 = cos(0.65f);
            n = (float3)(n.x, n.y * ct2 - n.z * st2, n.y * st2 + n.z * ct2);
            float sa2 = sin(angle), ca2 = cos(angle);
            n = (float3)(n.x * ca2 + n.z * sa2, n.y, -n.x * sa2 + n.z * ca2);
            float3 l = normalize((float3)(-0.4f, 0.9f, 0.3f));
            float k = fmin(1.0f, 0.18f + 0.85f * fmax(0.0f, dot(n, l)));
            px = (uchar4)((uchar)(255.0f * k), (uchar)(153.0f * k), (uchar)(51.0f * k), 0xFF);
            break;
        }
        dist += sd;
        if (dist > 10.0f) {
            break;
        }
    }
    vstore4(px, idx, out);
}`

// CLScene renders the rotating torus with an OpenCL kernel.
type CLScene struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	outBuf     *cl.MemObject
	width      int
	height     int
	img        *image.RGBA
	deviceName string
}

// NewCLScene compiles the torus kernel on the first GPU, falling back to the
// first CPU device.
func NewCLScene(width, height int) (*CLScene, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid scene size %dx%d", width, height)
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &CLScene{
		width:      width,
		height:     height,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		deviceName: device.Name(),
	}
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{torusKernelSource}); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("torus_frame"); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	if s.outBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, len(s.img.Pix)); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating output buffer: %w", err)
	}
	if err := s.kernel.SetArgs(int32(width), int32(height), float32(0), s.outBuf); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// Render implements Provider.
func (s *CLScene) Render(angle float64) error {
	if s.kernel == nil {
		return errors.New("OpenCL scene closed")
	}
	if err := s.kernel.SetArgFloat32(2, float32(angle)); err != nil {
		return fmt.Errorf("setting angle: %w", err)
	}
	global := []int{s.width * s.height}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	ptr := unsafe.Pointer(&s.img.Pix[0])
	if _, err := s.queue.EnqueueReadBuffer(s.outBuf, true, 0, len(s.img.Pix), ptr, nil); err != nil {
		return fmt.Errorf("reading frame: %w", err)
	}
	return nil
}

// Bounds implements Provider.
func (s *CLScene) Bounds() (int, int) { return s.width, s.height }

// At implements Provider.
func (s *CLScene) At(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }

// DeviceName reports the OpenCL device in use.
func (s *CLScene) DeviceName() string { return s.deviceName }

// Close releases all OpenCL objects. It is safe to call more than once.
func (s *CLScene) Close() {
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
