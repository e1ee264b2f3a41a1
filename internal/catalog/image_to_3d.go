package catalog

// 3D generation endpoints are the most heterogeneous family: every vendor
// names its knobs and output fields differently, so each schema is spelled
// out in full rather than shared.
var imageTo3DModels = []ModelSchema{
	{
		ID:   "fal-ai/trellis",
		Name: "TRELLIS",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			num("ss_guidance_strength").def(7.5).bounds(0, 10),
			num("ss_sampling_steps").def(float64(12)).bounds(1, 50),
			num("slat_guidance_strength").def(float64(3)).bounds(0, 10),
			num("slat_sampling_steps").def(float64(12)).bounds(1, 50),
			num("mesh_simplify").def(0.95).bounds(0.9, 0.98),
			num("texture_size").enum(float64(512), float64(1024), float64(1536), float64(2048)).def(float64(1024)),
		},
	},
	{
		ID:   "fal-ai/hunyuan3d/v2",
		Name: "Hunyuan3D 2.0",
		Parameters: []ParameterSpec{
			str("input_image_url").req(),
			num("num_inference_steps").def(float64(50)).bounds(1, 50),
			num("octree_resolution").def(float64(256)).bounds(256, 512),
			num("guidance_scale").def(7.5).bounds(1, 20),
			boolean("textured_mesh").def(false),
		},
	},
	{
		ID:   "fal-ai/triposr",
		Name: "TripoSR",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			str("output_format").enum("glb", "obj").def("glb"),
			boolean("do_remove_background").def(true),
			num("foreground_ratio").def(0.9).bounds(0.5, 1),
			num("mc_resolution").def(float64(256)).bounds(32, 320),
		},
	},
	{
		ID:   "fal-ai/stable-fast-3d",
		Name: "Stable Fast 3D",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			num("texture_size").enum(float64(512), float64(1024), float64(2048)).def(float64(1024)),
			str("remesh").enum("none", "quad", "triangle").def("none"),
			num("foreground_ratio").def(0.85).bounds(0.5, 1),
		},
	},
	{
		ID:   "fal-ai/hyper3d/rodin",
		Name: "Hyper3D Rodin",
		Parameters: []ParameterSpec{
			array("input_image_urls").req(),
			str("geometry_file_format").enum("glb", "usdz", "fbx", "obj", "stl").def("glb"),
			str("material").enum("PBR", "Shaded").def("PBR"),
			str("quality").enum("high", "medium", "low", "extra-low").def("medium"),
			boolean("use_hyper").def(false),
		},
	},
	{
		ID:   "fal-ai/era-3d",
		Name: "Era3D",
		Parameters: []ParameterSpec{
			str("image_url").req(),
			num("cfg").def(float64(4)).bounds(1, 10),
			num("steps").def(float64(40)).bounds(1, 100),
			num("crop_size").def(float64(400)).bounds(256, 512),
			num("seed"),
		},
	},
}
