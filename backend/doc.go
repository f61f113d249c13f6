/*
Package backend provides an abstraction layer to the available computational backends, currently implemented:

	- naive (naive implementation, no optimizations)
	- blas (gonum blas32 and floats interfaces)

Future:

	- cuda
	- opencl
*/
package backend
