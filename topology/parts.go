package topology

var (
	fullParts = []string{
		"nose",            //  0
		"leftEyeInside",   //  1
		"leftEye",         //  2
		"leftEyeOutside",  //  3
		"rightEyeInside",  //  4
		"rightEye",        //  5
		"rightEyeOutside", //  6
		"leftEar",         //  7
		"rightEar",        //  8
		"leftMouth",       //  9
		"rightMouth",      // 10
		"leftShoulder",    // 11
		"rightShoulder",   // 12
		"leftElbow",       // 13
		"rightElbow",      // 14
		"leftWrist",       // 15
		"rightWrist",      // 16
		"leftPalm",        // 17
		"rightPalm",       // 18
		"leftIndex",       // 19
		"rightIndex",      // 20
		"leftPinky",       // 21
		"rightPinky",      // 22
		"leftHip",         // 23
		"rightHip",        // 24
		"leftKnee",        // 25
		"rightKnee",       // 26
		"leftAnkle",       // 27
		"rightAnkle",      // 28
		"leftHeel",        // 29
		"rightHeel",       // 30
		"leftFoot",        // 31
		"rightFoot",       // 32
		"midHip",          // 33
		"forehead",        // 34
		"leftThumb",       // 35
		"leftHand",        // 36
		"rightThumb",      // 37
		"rightHand",       // 38
	}

	fullGroups = []Group{
		{Name: "leftEye", Parts: []string{"leftEyeInside", "leftEye", "leftEyeOutside", "leftEar"}},
		{Name: "rightEye", Parts: []string{"rightEyeInside", "rightEye", "rightEyeOutside", "rightEar"}},
		{Name: "nose", Parts: []string{"leftEyeInside", "nose", "rightEyeInside"}},
		{Name: "mouth", Parts: []string{"leftMouth", "rightMouth"}},
		{Name: "torso", Parts: []string{"leftShoulder", "rightShoulder", "rightHip", "leftHip", "leftShoulder"}},
		{Name: "leftArm", Parts: []string{"leftShoulder", "leftElbow", "leftWrist", "leftPalm"}},
		{Name: "rightArm", Parts: []string{"rightShoulder", "rightElbow", "rightWrist", "rightPalm"}},
		{Name: "leftHand", Parts: []string{"leftWrist", "leftPinky", "leftIndex", "leftWrist", "leftThumb"}},
		{Name: "rightHand", Parts: []string{"rightWrist", "rightPinky", "rightIndex", "rightWrist", "rightThumb"}},
		{Name: "leftLeg", Parts: []string{"leftHip", "leftKnee", "leftAnkle", "leftHeel", "leftFoot", "leftAnkle"}},
		{Name: "rightLeg", Parts: []string{"rightHip", "rightKnee", "rightAnkle", "rightHeel", "rightFoot", "rightAnkle"}},
	}

	// upperParts share the first 19 names with the full model, the remaining
	// outputs have no confirmed anatomical meaning and are kept as placeholders
	upperParts = []string{
		"nose",            //  0
		"leftEyeInside",   //  1
		"leftEye",         //  2
		"leftEyeOutside",  //  3
		"rightEyeInside",  //  4
		"rightEye",        //  5
		"rightEyeOutside", //  6
		"leftEar",         //  7
		"rightEar",        //  8
		"leftMouth",       //  9
		"rightMouth",      // 10
		"leftShoulder",    // 11
		"rightShoulder",   // 12
		"leftElbow",       // 13
		"rightElbow",      // 14
		"leftWrist",       // 15
		"rightWrist",      // 16
		"leftPalm",        // 17
		"rightPalm",       // 18
		"left:19",         // 19
		"right:20",        // 20
		"left:21",         // 21
		"right:22",        // 22
		"left:23",         // 23
		"right:24",        // 24
		"neck",            // 25
		"forehead",        // 26
		"left:27",         // 27
		"right:28",        // 28
		"left:29",         // 29
		"right:30",        // 30
	}

	upperGroups = []Group{
		{Name: "leftEye", Parts: []string{"leftEyeInside", "leftEye", "leftEyeOutside", "leftEar"}},
		{Name: "rightEye", Parts: []string{"rightEyeInside", "rightEye", "rightEyeOutside", "rightEar"}},
		{Name: "nose", Parts: []string{"leftEyeInside", "nose", "rightEyeInside"}},
		{Name: "mouth", Parts: []string{"leftMouth", "rightMouth"}},
		{Name: "spine", Parts: []string{"forehead", "nose", "neck"}},
		{Name: "shoulders", Parts: []string{"leftShoulder", "neck", "rightShoulder"}},
		{Name: "leftArm", Parts: []string{"leftShoulder", "leftElbow", "leftWrist", "leftPalm"}},
		{Name: "rightArm", Parts: []string{"rightShoulder", "rightElbow", "rightWrist", "rightPalm"}},
	}

	legacyParts = []string{
		"head",          //  0
		"neck",          //  1
		"rightShoulder", //  2
		"rightElbow",    //  3
		"rightWrist",    //  4
		"chest",         //  5
		"leftShoulder",  //  6
		"leftElbow",     //  7
		"leftWrist",     //  8
		"pelvis",        //  9
		"rightHip",      // 10
		"rightKnee",     // 11
		"rightAnkle",    // 12
		"leftHip",       // 13
		"leftKnee",      // 14
		"leftAnkle",     // 15
	}

	legacyGroups = []Group{
		{Name: "spine", Parts: []string{"head", "neck", "chest", "pelvis"}},
		{Name: "rightArm", Parts: []string{"rightShoulder", "rightElbow", "rightWrist"}},
		{Name: "leftArm", Parts: []string{"leftShoulder", "leftElbow", "leftWrist"}},
		{Name: "rightLeg", Parts: []string{"rightHip", "rightKnee", "rightAnkle"}},
		{Name: "leftLeg", Parts: []string{"leftHip", "leftKnee", "leftAnkle"}},
		{Name: "torso", Parts: []string{"rightShoulder", "leftShoulder", "leftHip", "rightHip", "rightShoulder"}},
	}
)
